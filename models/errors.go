package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a rejected operation. Every kind leaves the stored
// state intact; none of them are retried by the core.
type ErrorKind string

const (
	ErrConflict     ErrorKind = "conflict"      // timer already running
	ErrInvalidState ErrorKind = "invalid_state" // entry not in the expected state
	ErrValidation   ErrorKind = "validation"    // malformed manual entry
	ErrNotFound     ErrorKind = "not_found"     // unknown or invisible record
)

// Error is the domain error returned by the services layer.
type Error struct {
	Kind    ErrorKind
	Field   string // offending field for validation errors, optional
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus maps the kind to the status code controllers respond with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case ErrConflict, ErrInvalidState:
		return http.StatusConflict
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewConflict(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

func NewInvalidState(message string) *Error {
	return &Error{Kind: ErrInvalidState, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NewValidation reports a malformed request, field may be empty.
func NewValidation(field, message string) *Error {
	return &Error{Kind: ErrValidation, Field: field, Message: message}
}

// KindOf extracts the domain error kind, if err carries one.
func KindOf(err error) (ErrorKind, bool) {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind, true
	}
	return "", false
}
