// Package errors defines application errors carrying HTTP mapping metadata.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface for errors the delivery layer can translate into
// an HTTP response without inspecting internals.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	ErrMedicationNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDICATION_NOT_FOUND",
		"Medication not found",
	)

	ErrMedicationForbidden = NewBaseError(
		http.StatusForbidden,
		"MEDICATION_FORBIDDEN",
		"Medication belongs to another user",
	)

	ErrDeviceTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_TOKEN_NOT_FOUND",
		"Device token not found",
	)

	ErrDoseAlreadyLogged = NewBaseError(
		http.StatusConflict,
		"DOSE_ALREADY_LOGGED",
		"This dose has already been taken or skipped",
	)

	ErrInvalidDoseStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DOSE_STATUS",
		"Dose status must be taken or skipped",
	)

	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database operation failed",
	)
)

// NewDatabaseExecuteError wraps a low-level database error into the generic
// database AppError while preserving the cause for logs.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabaseExecute.WrapMessage(message), err.Error())
}
