// Package errno provides structured errors for the storefront API.
//
// Every failure the API can surface is an *Errno carrying an HTTP status
// code and a human-readable message. Handlers never inspect error kinds
// beyond this mapping: the wire contract collapses all client-visible
// failures to 400 except missing records, which map to 404.
//
// Usage:
//
//	// Using predefined errors
//	return errno.ErrValidation.WithMessage("name is required")
//
//	// Wrapping underlying errors
//	return errno.ErrStorage.WithCause(err)
package errno

import (
	"fmt"
	"net/http"
)

// Errno represents a structured error with an HTTP status and message.
type Errno struct {
	// HTTP is the HTTP status code to return.
	HTTP int `json:"-"`

	// Message is the human-readable error message.
	Message string `json:"error"`

	// base points at the predefined Errno this one was derived from,
	// so errors.Is works across WithMessage/WithCause copies.
	base *Errno

	// cause is the underlying error.
	cause error
}

// Predefined errors covering the API's failure taxonomy.
var (
	// ErrValidation indicates a required field is missing or has the
	// wrong type after coercion.
	ErrValidation = &Errno{HTTP: http.StatusBadRequest, Message: "invalid request payload"}

	// ErrConstraint indicates a foreign key references a missing row, or
	// a dependent row blocks a delete.
	ErrConstraint = &Errno{HTTP: http.StatusBadRequest, Message: "constraint violation"}

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = &Errno{HTTP: http.StatusNotFound, Message: "record not found"}

	// ErrConnection indicates the storage handle was never established.
	// The server starts regardless, so the failure surfaces at call time.
	ErrConnection = &Errno{HTTP: http.StatusBadRequest, Message: "database connection unavailable"}

	// ErrStorage covers any other failure raised by the storage engine.
	// The source API reported these as 400 alongside client errors, and
	// the contract preserves that collapse.
	ErrStorage = &Errno{HTTP: http.StatusBadRequest, Message: "storage operation failed"}
)

// Error implements the error interface.
func (e *Errno) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Errno) Unwrap() error {
	return e.cause
}

// root returns the predefined Errno this error derives from.
func (e *Errno) root() *Errno {
	if e.base != nil {
		return e.base
	}
	return e
}

// WithMessage returns a copy of the Errno with a custom message.
func (e *Errno) WithMessage(msg string) *Errno {
	return &Errno{
		HTTP:    e.HTTP,
		Message: msg,
		base:    e.root(),
		cause:   e.cause,
	}
}

// WithMessagef returns a copy of the Errno with a formatted message.
func (e *Errno) WithMessagef(format string, args ...interface{}) *Errno {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the Errno wrapping the given cause.
func (e *Errno) WithCause(cause error) *Errno {
	return &Errno{
		HTTP:    e.HTTP,
		Message: e.Message,
		base:    e.root(),
		cause:   cause,
	}
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Errno) HTTPStatus() int {
	if e.HTTP != 0 {
		return e.HTTP
	}
	return http.StatusInternalServerError
}

// Is reports whether target derives from the same predefined Errno,
// which lets callers use errors.Is against the predefined set.
func (e *Errno) Is(target error) bool {
	t, ok := target.(*Errno)
	if !ok {
		return false
	}
	return e.root() == t.root()
}
