package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metinatakli/show-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/show-booking/internal/booking"

var tracer = otel.Tracer(instrumentationName)

type ReservationRequest struct {
	ShowID       int
	StartingSeat int
	Passengers   []domain.Passenger
	UserID       int
}

type ReservationResult struct {
	Bookings []domain.Booking
	Count    int
}

// Coordinator books blocks of consecutive seats. Every reservation for a show runs under that show's
// lock, so two requests for overlapping seats can never both pass the checks.
type Coordinator struct {
	shows        domain.ShowRepository
	bookings     domain.BookingRepository
	now          func() time.Time
	reservations metric.Int64Counter
}

func NewCoordinator(shows domain.ShowRepository, bookings domain.BookingRepository) *Coordinator {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"booking.reservations",
		metric.WithDescription("Reservation attempts by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &Coordinator{
		shows:        shows,
		bookings:     bookings,
		now:          time.Now,
		reservations: counter,
	}
}

func (c *Coordinator) Reserve(ctx context.Context, req ReservationRequest) (result *ReservationResult, err error) {
	ctx, span := tracer.Start(ctx, "Coordinator.Reserve", trace.WithAttributes(
		attribute.Int("show.id", req.ShowID),
		attribute.Int("booking.starting_seat", req.StartingSeat),
		attribute.Int("booking.passengers", len(req.Passengers)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if c.reservations != nil {
			c.reservations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome(err))))
		}
		span.End()
	}()

	show, err := c.shows.GetById(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}

	if len(req.Passengers) == 0 {
		return nil, domain.NewValidationError("at least one passenger required")
	}

	var created []*domain.Booking

	err = c.bookings.WithShowLock(ctx, show.ID, func(ledger domain.SeatLedger) error {
		available, err := AvailableSeats(ctx, ledger, show)
		if err != nil {
			return fmt.Errorf("failed to count booked seats: %w", err)
		}

		booked, err := BookedSeatSet(ctx, ledger, show.ID)
		if err != nil {
			return fmt.Errorf("failed to list booked seats: %w", err)
		}

		state := seatRequest{
			show:       show,
			available:  available,
			booked:     booked,
			start:      req.StartingSeat,
			passengers: req.Passengers,
		}

		for _, check := range reservationChecks {
			if err := check(state); err != nil {
				return err
			}
		}

		created = c.newBookings(req, show.ID)

		err = ledger.InsertBookings(ctx, created)
		if errors.Is(err, domain.ErrSeatAlreadyReserved) {
			return domain.NewConflictError(state.seatRange(), "some seats were just booked by another user")
		}

		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrShowBusy) {
			return nil, domain.NewConflictError(nil, "show %d is busy with another booking, please retry", show.ID)
		}

		return nil, err
	}

	result = &ReservationResult{
		Bookings: make([]domain.Booking, len(created)),
		Count:    len(created),
	}
	for i, b := range created {
		result.Bookings[i] = *b
	}

	return result, nil
}

func (c *Coordinator) newBookings(req ReservationRequest, showID int) []*domain.Booking {
	now := c.now().UTC()
	bookings := make([]*domain.Booking, len(req.Passengers))

	for i, p := range req.Passengers {
		bookings[i] = &domain.Booking{
			UserID:        req.UserID,
			ShowID:        showID,
			SeatNumber:    req.StartingSeat + i,
			PassengerName: p.Name,
			PassengerAge:  p.Age,
			Status:        domain.BookingStatusBooked,
			CreatedAt:     now,
		}
	}

	return bookings
}

func outcome(err error) string {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
	)

	switch {
	case err == nil:
		return "booked"
	case errors.As(err, &validationErr):
		return "rejected"
	case errors.As(err, &conflictErr):
		return "conflict"
	case errors.Is(err, domain.ErrRecordNotFound):
		return "not_found"
	default:
		return "error"
	}
}
