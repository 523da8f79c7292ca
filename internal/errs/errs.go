package errs

import (
	"errors"
	"net/http"
)

// Error is a failure with an associated HTTP status.
// Lower layers (provider, store, tracker) build these with enough context for
// the handler to map them to a response without inspecting message strings.
type Error struct {
	Status  int    // HTTP status this failure maps to
	Message string // User-facing message (safe to return to the client)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Validation creates a 400 error for missing/invalid input.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound creates a 404 error (country unknown upstream, favorite absent).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Forbidden creates a 403 error (blacklisted country).
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// Conflict creates a 409 error (duplicate favorite).
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Upstream creates a 500 error for provider or I/O failures.
func Upstream(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// StatusOf returns the HTTP status carried by err, or 500 for any error that
// is not an *Error (unexpected failures never leak a more specific status).
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// IsStatus reports whether err carries the given HTTP status.
func IsStatus(err error, status int) bool {
	return err != nil && StatusOf(err) == status
}
