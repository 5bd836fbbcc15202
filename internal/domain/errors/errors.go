package errors

import (
	"net/http"

	"retailhive/internal/errors"
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
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrFloorNotFound = NewBaseError(
		http.StatusNotFound,
		"FLOOR_NOT_FOUND",
		"Floor not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidExpiryDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EXPIRY_DATE",
		"Expiry date is not a valid date",
		"",
	)

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

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatastoreError represents a backing store failure, implementing the
// AppError interface.
type DatastoreError struct {
	err     error
	details string
}

// NewDatastoreError creates a datastore-related error
func NewDatastoreError(err error, details string) AppError {
	return &DatastoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatastoreError) Error() string {
	return errors.Wrap(e.err, "datastore operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatastoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatastoreError) ErrorCode() string {
	return "DATASTORE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatastoreError) Message() string {
	return "Datastore operation failed"
}

// Details returns detailed error information
func (e *DatastoreError) Details() string {
	return e.details
}
