package booking

import (
	"context"
	"errors"

	"github.com/metinatakli/show-booking/internal/domain"
)

// CancellationHandler turns a booking of its owner into a cancelled one. It needs no show lock, the
// status change is a single conditional row update.
type CancellationHandler struct {
	bookings domain.BookingRepository
}

func NewCancellationHandler(bookings domain.BookingRepository) *CancellationHandler {
	return &CancellationHandler{bookings: bookings}
}

func (h *CancellationHandler) Cancel(ctx context.Context, bookingID, userID int) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "CancellationHandler.Cancel")
	defer span.End()

	booking, err := h.bookings.GetById(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if !booking.IsActive() {
		return nil, errAlreadyCancelled()
	}

	err = h.bookings.UpdateStatus(ctx, booking.ID, domain.BookingStatusBooked, domain.BookingStatusCancelled)
	if err != nil {
		if errors.Is(err, domain.ErrEditConflict) {
			return nil, errAlreadyCancelled()
		}

		return nil, err
	}

	booking.Status = domain.BookingStatusCancelled

	return booking, nil
}

func errAlreadyCancelled() *domain.ValidationError {
	return domain.NewValidationError("booking already cancelled")
}
