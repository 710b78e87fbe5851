package apperr

import (
	"errors"
	"net/http"
)

// Error is a status-coded error that every service operation returns for
// failures it has classified. Anything else is treated as internal.
type Error struct {
	Status  int
	Message string
	Data    any

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// FieldError carries field-level validation detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(message string, fields []FieldError) *Error {
	e := &Error{Status: http.StatusUnprocessableEntity, Message: message}
	if len(fields) > 0 {
		e.Data = fields
	}
	return e
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal wraps an unclassified failure. The original error is kept for
// logging but never serialized to the client.
func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error.",
		cause:   err,
	}
}

// From returns err as an *Error, wrapping unclassified errors as Internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
