package booking

import (
	"fmt"
	"strings"

	"github.com/metinatakli/show-booking/internal/domain"
)

// Violation is a passenger younger than the effective age limit of a movie.
type Violation struct {
	Name string
	Age  int
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (age %d)", v.Name, v.Age)
}

// CheckEligibility returns every passenger below the effective age limit of the movie, in input order.
// An empty result means the whole group may watch it.
func CheckEligibility(movie domain.Movie, passengers []domain.Passenger) []Violation {
	limit := movie.EffectiveAgeLimit()

	var violations []Violation
	for _, p := range passengers {
		if p.Age < limit {
			violations = append(violations, Violation{Name: p.Name, Age: p.Age})
		}
	}

	return violations
}

func eligibilityError(movie domain.Movie, violations []Violation) *domain.ValidationError {
	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.String()
	}

	return domain.NewValidationError(
		"the following passengers do not meet the age requirement (%d+): %s",
		movie.EffectiveAgeLimit(),
		strings.Join(names, ", "),
	)
}
