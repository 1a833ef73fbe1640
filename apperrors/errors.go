// Package apperrors holds the error taxonomy shared by the repository,
// service and handler layers. Handlers map these to HTTP statuses; nothing
// here knows about HTTP.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrStore        = errors.New("store operation failed")
	ErrInvalidMonth = errors.New("invalid month")
)

// ValidationError carries a readable message plus per-field messages keyed
// by the wire name of the field.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError. fields may be nil.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// StoreError wraps a persistence failure. errors.Is(err, ErrStore) holds and
// errors.Unwrap yields the driver error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

type InvalidMonthError struct {
	Month string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %q", e.Month)
}

func (e *InvalidMonthError) Unwrap() error {
	return ErrInvalidMonth
}

func NewInvalidMonthError(month string) *InvalidMonthError {
	return &InvalidMonthError{Month: month}
}
