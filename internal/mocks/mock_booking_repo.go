package mocks

import (
	"context"

	"github.com/metinatakli/show-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

// WithShowLock returns the first configured value when it is an error; otherwise fn runs against
// the SeatLedger configured as the second value.
func (m *MockBookingRepo) WithShowLock(ctx context.Context, showID int, fn func(domain.SeatLedger) error) error {
	args := m.Called(ctx, showID, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(args.Get(1).(domain.SeatLedger))
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int, from, to domain.BookingStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockBookingRepo) GetSummariesByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.BookingSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}
