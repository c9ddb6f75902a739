// Package errors defines the application error taxonomy. Every error that
// crosses the usecase boundary is either an AppError with a fixed HTTP
// mapping, a ValidationError carrying the full ordered message list, or an
// unexpected error that the delivery layer turns into a 500.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// Authentication and session errors.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// ErrDuplicateEmail is a conflict surfaced as a 400 with a generic
	// message so registration never leaks which emails exist.
	ErrDuplicateEmail = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_EMAIL",
		"Error registering user",
		"",
	)

	ErrMissingRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REQUIRED",
		"Refresh token is required",
		"",
	)

	ErrInvalidRefreshToken = NewBaseError(
		http.StatusForbidden,
		"REFRESH_TOKEN_INVALID",
		"Invalid refresh token",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_DENIED",
		"Access denied. No token provided.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token.",
		"",
	)

	// Resource errors with per-resource messages.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	// ErrProductNotOwned covers both a missing product and a product owned
	// by someone else; the caller cannot tell the two apart.
	ErrProductNotOwned = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found or not owned by user",
		"",
	)

	ErrCategoryHasProducts = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_HAS_PRODUCTS",
		"Cannot delete category with associated products",
		"",
	)

	// ErrNameConflict is the fallback when a unique-name constraint fires at
	// commit time after validation already passed (concurrent insert).
	ErrNameConflict = NewBaseError(
		http.StatusBadRequest,
		"NAME_CONFLICT",
		"A record with this name already exists.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError carries the full ordered list of field-validation
// messages. Validation never short-circuits, so the slice holds every
// violated rule in check order.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a ValidationError from the collected messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}

	return e.Messages[0]
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
