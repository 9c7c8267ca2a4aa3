package domain

import (
	"context"
	"strings"
)

const (
	GenreHorror = "horror"

	horrorAgeSurcharge = 2
)

type Rating string

const (
	RatingUniversal Rating = "U"
	RatingUA13      Rating = "U/A 13+"
	RatingUA16      Rating = "U/A 16+"
	RatingAdult     Rating = "A"
)

type Movie struct {
	ID              int
	Title           string
	DurationMinutes int
	Genre           string
	Rating          Rating
	AgeLimit        int
}

// EffectiveAgeLimit is the minimum passenger age for the movie. Horror adds two years on top of the
// base limit.
func (m Movie) EffectiveAgeLimit() int {
	limit := m.AgeLimit
	if strings.EqualFold(m.Genre, GenreHorror) {
		limit += horrorAgeSurcharge
	}

	return limit
}

type MovieRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}
