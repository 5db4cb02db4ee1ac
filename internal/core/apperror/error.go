// Package apperror provides structured error handling for the API.
// All errors reaching the HTTP boundary are converted to a JSON
// {"error": message} payload by the error middleware.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeStore        = "STORE_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
)

// AppError is the standard error type for the service.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is the human-readable description surfaced to the caller
	Message string `json:"message"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// --- Factory functions ---

// NewValidation creates a validation error (400).
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not-found error. Invalid or expired lookups
// (reset tokens) answer 400 to match the external contract.
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewStore wraps a persistence failure (500). The store message is
// surfaced verbatim to the caller.
func NewStore(err error) *AppError {
	msg := "store failure"
	if err != nil {
		msg = err.Error()
	}
	return &AppError{
		Code:       CodeStore,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUnauthorized creates an authentication error. Auth failures use the
// same {"error"} payload with a 400 status as the rest of the API.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
