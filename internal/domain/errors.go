package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrNilReference marks a caller bug: a required collaborator or entity
	// was nil. It is never a user input problem.
	ErrNilReference = errors.New("nil reference")
)

// ValidationError reports the first rule an entity operation violated.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr)
// to read the offending Field and its Message.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError returns a ValidationError for field with message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NilReferenceError is returned when a required argument is nil.
type NilReferenceError struct {
	Param string
}

func (e *NilReferenceError) Error() string {
	return fmt.Sprintf("%s: %s must not be nil", ErrNilReference.Error(), e.Param)
}

func (e *NilReferenceError) Unwrap() error {
	return ErrNilReference
}
