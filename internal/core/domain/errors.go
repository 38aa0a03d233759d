package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entity does not exist or has been
// deactivated. Inactive entities are never used by budget math, so the
// two cases are reported the same way.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition is returned when an explicit campaign action is not
// allowed from the campaign's current status.
var ErrInvalidTransition = errors.New("invalid campaign status transition")

// ValidationError reports input that was rejected before any mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// PersistenceError wraps storage failures, including lock acquisition
// timeouts. Callers may retry the whole operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err as a *PersistenceError. Nil, ErrNotFound and
// errors that already carry a persistence or validation classification are
// returned unchanged.
func NewPersistenceError(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersistence reports whether err is a storage failure.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
