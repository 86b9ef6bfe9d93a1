package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict means the requested equipment is already booked for an
	// overlapping period by an active (non-terminal) rental.
	ErrConflict = errors.New("equipment already booked in the requested period")

	// ErrInvalidTransition means the requested status change is not allowed
	// from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrNotFound = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a rejected submission field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
