// Package apperror defines the error kinds the services return so that
// handlers can map failure causes to HTTP statuses without string matching.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Validation is malformed or missing caller input.
	Validation Kind = iota
	// Auth is a credential failure or missing token. Deliberately carries no
	// detail about whether the user exists.
	Auth
	// Forbidden is a token that is present but invalid or expired.
	Forbidden
	// Conflict is a duplicate registration.
	Conflict
	// NotFound is an absent operation target.
	NotFound
	// Integrity is a consistency violation between the identity and catalog
	// stores, e.g. an image whose author cannot be resolved.
	Integrity
	// Infrastructure is a storage or crypto subsystem failure; retryable.
	Infrastructure
)

// Error is the application error type. Message is safe to show to clients;
// Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	default:
		// Integrity and Infrastructure both surface as server faults.
		return http.StatusInternalServerError
	}
}

// New creates an Error of the given kind wrapping an underlying cause.
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Newf creates an Error with a formatted message and no underlying cause.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// StatusOf returns the HTTP status for err, defaulting to 500 for errors
// that are not application errors.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message for err. Non-application errors
// get a generic message so internals never leak to clients.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
