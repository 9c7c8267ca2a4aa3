package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrEditConflict        = errors.New("edit conflict")
	ErrForbidden           = errors.New("forbidden")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrShowBusy            = errors.New("show is locked by another booking")
)

// ValidationError is a rejected business rule. The message is shown to the caller as is.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports seats that are taken by another booking.
type ConflictError struct {
	Message string
	Seats   []int
}

func NewConflictError(seats []int, format string, args ...any) *ConflictError {
	return &ConflictError{
		Message: fmt.Sprintf(format, args...),
		Seats:   seats,
	}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// FormatSeats renders seat numbers as "[3, 4]".
func FormatSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = fmt.Sprint(s)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
