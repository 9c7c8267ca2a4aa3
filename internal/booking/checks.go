package booking

import "github.com/metinatakli/show-booking/internal/domain"

// seatRequest is the state a reservation is validated against, read under the show lock.
type seatRequest struct {
	show       *domain.Show
	available  int
	booked     map[int]bool
	start      int
	passengers []domain.Passenger
}

func (s seatRequest) last() int {
	return s.start + len(s.passengers) - 1
}

func (s seatRequest) seatRange() []int {
	seats := make([]int, 0, len(s.passengers))
	for seat := s.start; seat <= s.last(); seat++ {
		seats = append(seats, seat)
	}

	return seats
}

type seatCheck func(seatRequest) error

// reservationChecks run in order; the first failure rejects the request before anything is written.
var reservationChecks = []seatCheck{
	checkNotFullyBooked,
	checkCapacity,
	checkStartingSeat,
	checkConsecutiveRange,
	checkOverlap,
	checkEligibility,
}

func checkNotFullyBooked(s seatRequest) error {
	if s.available <= 0 {
		return domain.NewConflictError(nil, "show is fully booked")
	}

	return nil
}

func checkCapacity(s seatRequest) error {
	if len(s.passengers) > s.available {
		return domain.NewValidationError(
			"only %d seats available, but %d passengers requested",
			s.available,
			len(s.passengers),
		)
	}

	return nil
}

func checkStartingSeat(s seatRequest) error {
	if s.start < 1 || s.start > s.show.TotalSeats {
		return domain.NewValidationError("seat_number must be between 1 and %d", s.show.TotalSeats)
	}

	return nil
}

func checkConsecutiveRange(s seatRequest) error {
	if s.last() > s.show.TotalSeats {
		return domain.NewValidationError(
			"cannot book %d consecutive seats starting from seat %d: only %d seats available from that position",
			len(s.passengers),
			s.start,
			s.show.TotalSeats-s.start+1,
		)
	}

	return nil
}

func checkOverlap(s seatRequest) error {
	var taken []int
	for _, seat := range s.seatRange() {
		if s.booked[seat] {
			taken = append(taken, seat)
		}
	}

	if len(taken) > 0 {
		return domain.NewConflictError(
			taken,
			"cannot book consecutive seats starting from %d: seats %s are already booked",
			s.start,
			domain.FormatSeats(taken),
		)
	}

	return nil
}

func checkEligibility(s seatRequest) error {
	violations := CheckEligibility(s.show.Movie, s.passengers)
	if len(violations) > 0 {
		return eligibilityError(s.show.Movie, violations)
	}

	return nil
}
