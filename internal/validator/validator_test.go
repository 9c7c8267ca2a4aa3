package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/show-booking/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidationMessages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     any
		wantField string
		wantIssue string
	}{
		{
			name: "weak password",
			input: api.SignupRequest{
				Username:  "freddie",
				Email:     "freddie@example.com",
				Password:  "password",
				FirstName: "Freddie",
				LastName:  "Mercury",
			},
			wantField: "Password",
			wantIssue: ErrPassword,
		},
		{
			name: "invalid email",
			input: api.SignupRequest{
				Username:  "freddie",
				Email:     "freddie",
				Password:  "Test123!@#",
				FirstName: "Freddie",
				LastName:  "Mercury",
			},
			wantField: "Email",
			wantIssue: ErrEmail,
		},
		{
			name: "short username",
			input: api.SignupRequest{
				Username:  "fm",
				Email:     "freddie@example.com",
				Password:  "Test123!@#",
				FirstName: "Freddie",
				LastName:  "Mercury",
			},
			wantField: "Username",
			wantIssue: fmt.Sprintf(ErrMinLength, "3"),
		},
		{
			name: "negative passenger age",
			input: api.BookShowRequest{
				SeatNumber: 1,
				Passengers: []api.PassengerRequest{{PassengerName: "Alice", PassengerAge: ptr(-1)}},
			},
			wantField: "PassengerAge",
			wantIssue: fmt.Sprintf(ErrMinValue, "0"),
		},
		{
			name: "missing passenger age",
			input: api.BookShowRequest{
				SeatNumber: 1,
				Passengers: []api.PassengerRequest{{PassengerName: "Alice"}},
			},
			wantField: "PassengerAge",
			wantIssue: ErrRequired,
		},
		{
			name:      "page below one",
			input:     api.PaginationParams{Page: ptr(0)},
			wantField: "Page",
			wantIssue: fmt.Sprintf(ErrMinValue, "1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)

			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			require.Len(t, validationErrs, 1)

			assert.Equal(t, tt.wantField, validationErrs[0].Field())
			assert.Equal(t, tt.wantIssue, ValidationMessage(validationErrs[0]))
		})
	}
}

func TestEmptyPassengerListPassesValidation(t *testing.T) {
	v := NewValidator()

	err := v.Struct(api.BookShowRequest{SeatNumber: 1})
	assert.NoError(t, err)
}
