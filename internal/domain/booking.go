package domain

import (
	"context"
	"time"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int
	UserID        int
	ShowID        int
	SeatNumber    int
	PassengerName string
	PassengerAge  int
	Status        BookingStatus
	CreatedAt     time.Time
}

func (b Booking) IsActive() bool {
	return b.Status == BookingStatusBooked
}

// Passenger is the request-scoped name and age that becomes one booking.
type Passenger struct {
	Name string
	Age  int
}

// BookingSummary is a booking joined with the show and movie it belongs to.
type BookingSummary struct {
	Booking
	MovieTitle   string
	ScreenName   string
	ShowDateTime time.Time
}

// SeatLedger is the view of the bookings of a show available while its lock is held.
type SeatLedger interface {
	CountBooked(ctx context.Context, showID int) (int, error)
	BookedSeats(ctx context.Context, showID int) ([]int, error)
	// InsertBookings stores the bookings and fills in their ID and CreatedAt. A seat that already has an
	// active booking fails the whole batch with ErrSeatAlreadyReserved.
	InsertBookings(ctx context.Context, bookings []*Booking) error
}

type BookingRepository interface {
	// WithShowLock runs fn while holding the exclusive lock of the show. Writes made through the ledger
	// are committed only if fn returns nil.
	WithShowLock(ctx context.Context, showID int, fn func(SeatLedger) error) error
	GetById(ctx context.Context, id int) (*Booking, error)
	// UpdateStatus moves a booking from one status to another. It returns ErrEditConflict when the
	// booking is no longer in the from status.
	UpdateStatus(ctx context.Context, id int, from, to BookingStatus) error
	GetSummariesByUserId(ctx context.Context, userId int, pagination Pagination) ([]BookingSummary, *Metadata, error)
}
