package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPersistence indicates that the underlying store failed to read or write data.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code and a message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is works on the sentinels.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and message. 5xx codes are tagged as ErrPersistence
// when the cause is not already one of the sentinels.
func NewAppError(code int, message string, err error) *AppError {
	if code >= http.StatusInternalServerError && !isSentinel(err) {
		err = wrapPersistence(err)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func isSentinel(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicate) || errors.Is(err, ErrPersistence) ||
		errors.Is(err, ErrUnauthorized)
}

func wrapPersistence(err error) error {
	if err == nil {
		return ErrPersistence
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
