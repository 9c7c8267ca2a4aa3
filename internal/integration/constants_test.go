package integration_test

import (
	"time"

	"github.com/metinatakli/show-booking/internal/domain"
)

const (
	// User related constants
	TestUsername      = "johndoe"
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"

	// Movie related constants
	TestMovieTitle    = "Test Movie"
	TestMovieGenre    = "Drama"
	TestMovieRating   = domain.RatingUA13
	TestMovieAgeLimit = 13
	TestMovieDuration = 120

	// Show related constants
	TestScreenName = "Screen 1"
	TestTotalSeats = 5

	// Booking related constants
	TestPassengerName = "Jane Doe"
	TestPassengerAge  = 30
)

var TestShowDateTime = time.Date(2030, time.January, 1, 20, 0, 0, 0, time.UTC)
