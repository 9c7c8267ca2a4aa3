package booking

import (
	"context"

	"github.com/metinatakli/show-booking/internal/domain"
)

// AvailableSeats is the number of seats of the show without an active booking, read from the ledger at
// call time. Callers that act on the result must hold the show lock.
func AvailableSeats(ctx context.Context, ledger domain.SeatLedger, show *domain.Show) (int, error) {
	booked, err := ledger.CountBooked(ctx, show.ID)
	if err != nil {
		return 0, err
	}

	return show.TotalSeats - booked, nil
}

// BookedSeatSet returns the seat numbers of the active bookings of a show.
func BookedSeatSet(ctx context.Context, ledger domain.SeatLedger, showID int) (map[int]bool, error) {
	seats, err := ledger.BookedSeats(ctx, showID)
	if err != nil {
		return nil, err
	}

	booked := make(map[int]bool, len(seats))
	for _, seat := range seats {
		booked[seat] = true
	}

	return booked, nil
}
