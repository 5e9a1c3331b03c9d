package errors

import (
	"net/http"

	"crosslink/internal/errors"
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
	// Link request errors. A consumed, expired, or never-issued code all
	// answer the same way, so a caller cannot probe which codes were valid.
	ErrLinkCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_CODE_NOT_FOUND",
		"We could not find that code, has it expired?",
		"",
	)

	ErrLinkCodeOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"LINK_CODE_OUT_OF_RANGE",
		"Link codes are four digits, between 0000 and 9999",
		"",
	)

	// ErrSamePlatform rejects a pairing of two identities from the same
	// account system before any durable write is attempted.
	ErrSamePlatform = NewBaseError(
		http.StatusBadRequest,
		"LINK_SAME_PLATFORM",
		"Both accounts are on the same platform, enter the code from the other platform",
		"",
	)

	ErrNotLinked = NewBaseError(
		http.StatusNotFound,
		"LINK_NOT_FOUND",
		"This account is not linked",
		"",
	)

	ErrAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"LINK_ALREADY_EXISTS",
		"This account is already linked, unlink it first",
		"",
	)

	ErrLookupPending = NewBaseError(
		http.StatusConflict,
		"LINK_LOOKUP_PENDING",
		"Still fetching your link, try again in a moment",
		"",
	)

	// Identity errors
	ErrUnknownPlatform = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLATFORM",
		"Could not determine which platform this account belongs to",
		"",
	)

	ErrIdentityNotConnected = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_CONNECTED",
		"This account is not connected",
		"",
	)

	// Session/token errors
	ErrSessionTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_TOKEN_INVALID",
		"Invalid or expired session token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// It is the error channel for store failures, kept distinct from a legitimate
// "operation ran, affected nothing" result.
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

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "The link service had a temporary problem, try again shortly"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
