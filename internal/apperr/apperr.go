package apperr

import (
	"errors"
	"fmt"
)

// ValidationError marks a malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError marks an id, either the target entity or a referenced
// parent, that does not exist in the store.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %d", e.Entity, e.ID)
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError marks a write rejected by a state precondition on a
// related entity.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return e.Reason
}

func InvalidState(reason string) error {
	return &InvalidStateError{Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}
