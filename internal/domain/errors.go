package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StateConflictError reports that an entity was not in the state an
// operation requires. Ledger transitions surface it as a false result;
// callers use it to explain the refusal.
type StateConflictError struct {
	Entity string
	ID     ID
	Want   string
	Got    string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s %s is not %s", e.Entity, e.ID, strings.ToLower(e.Want))
}

func (e *StateConflictError) Unwrap() error { return ErrConflict }

// NewStateConflictError creates a StateConflictError.
func NewStateConflictError(entity string, id ID, want, got string) *StateConflictError {
	return &StateConflictError{Entity: entity, ID: id, Want: want, Got: got}
}
