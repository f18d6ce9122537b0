package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by the store, the services and the CLI.
var (
	// ErrNotFound: a referenced article, topic, board, meeting or state
	// record does not exist.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	// ErrConflict: a concurrent writer changed the current record of the
	// same article/topic pair first.
	ErrConflict = errors.New("concurrency conflict")
	// ErrInvalidState: the state value is not in the vocabulary, or the
	// request attaches decisions or meetings the state does not accept.
	ErrInvalidState = errors.New("invalid state")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field-level problem of one input.
type ValidationError struct {
	Errors []FieldError
}

// Error lists the fields in input order, e.g.
// "validation: article_id required; comment too long".
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
