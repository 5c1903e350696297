// Package errors defines the typed error taxonomy surfaced by the domain
// layer: authentication, authorization, not-found, validation, conflict and
// storage failures, each mapped to a stable machine-readable code.
package errors

import (
	"net/http"

	"raidhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors (caller is not authenticated)
	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"token has expired",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"token signature could not be verified",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"token could not be parsed",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"authentication required",
		"",
	)

	// Authorization-related errors (caller is known but not entitled)
	ErrCharacterOwnership = NewBaseError(
		http.StatusForbidden,
		"CHARACTER_OWNERSHIP_VIOLATION",
		"you can only act on your own characters",
		"",
	)

	ErrRaidDeleteForbidden = NewBaseError(
		http.StatusForbidden,
		"RAID_DELETE_FORBIDDEN",
		"only the raid creator can delete a raid",
		"",
	)

	// Not-found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrRaidNotFound = NewBaseError(
		http.StatusNotFound,
		"RAID_NOT_FOUND",
		"raid not found",
		"",
	)

	ErrCharacterNotFound = NewBaseError(
		http.StatusNotFound,
		"CHARACTER_NOT_FOUND",
		"character not found",
		"",
	)

	ErrSignupNotFound = NewBaseError(
		http.StatusNotFound,
		"SIGNUP_NOT_FOUND",
		"you have not signed up for this raid",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrEmptyCharacterName = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"character name cannot be empty",
		"",
	)

	ErrNegativeLevel = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"character level cannot be negative",
		"",
	)

	ErrEmptyRaidTitle = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"raid title cannot be empty",
		"",
	)

	ErrStartTimeTooFarInPast = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"raid start time is too far in the past",
		"",
	)

	ErrCharacterHasSignups = NewBaseError(
		http.StatusBadRequest,
		"CHARACTER_HAS_ACTIVE_SIGNUPS",
		"cannot delete a character with active raid signups",
		"",
	)

	// Conflict errors (state-dependent invariant violations)
	ErrDuplicateSignup = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SIGNUP",
		"character is already signed up for this raid",
		"",
	)

	ErrRaidFull = NewBaseError(
		http.StatusConflict,
		"RAID_FULL",
		"raid has reached its maximum number of participants",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
