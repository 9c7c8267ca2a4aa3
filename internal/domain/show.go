package domain

import (
	"context"
	"time"
)

const (
	ShowStatusAvailable   = "Available"
	ShowStatusFullyBooked = "Fully Booked"
)

// Show is a single screening. TotalSeats never changes after creation.
type Show struct {
	ID         int
	Movie      Movie
	ScreenName string
	DateTime   time.Time
	TotalSeats int
}

// ShowAvailability is a show together with the number of seats still free at read time.
type ShowAvailability struct {
	Show
	AvailableSeats int
}

func (s ShowAvailability) Status() string {
	if s.AvailableSeats <= 0 {
		return ShowStatusFullyBooked
	}

	return ShowStatusAvailable
}

type ShowRepository interface {
	GetById(ctx context.Context, id int) (*Show, error)
	GetByMovieId(ctx context.Context, movieId int) ([]ShowAvailability, error)
}
