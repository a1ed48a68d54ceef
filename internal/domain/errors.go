package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by services, use cases and handlers.
var (
	// ErrValidation malformed input, rejected before reaching the store
	ErrValidation = errors.New("validation error")

	// ErrConflict a schedule block already occupies the slot key
	ErrConflict = errors.New("conflict")

	// ErrForbidden the actor does not own the resource
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition the booking state machine does not allow the action
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrNotFound the resource does not exist (or vanished between fetch and mutate)
	ErrNotFound = errors.New("not found")

	// ErrSlotUnavailable the slot is not open for consultation
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrUpstreamUnavailable the store or another upstream could not be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ValidationError describes a single rejected input field.
// errors.Is(err, ErrValidation) holds for every *ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a field validation error
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

// Is makes the error match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
