// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes, so handlers can translate any service failure uniformly.
package apperror

import (
	"fmt"
	"net/http"
)

// ErrorType categorizes application errors.
type ErrorType int

const (
	// InternalError represents an unexpected runtime or persistence failure.
	InternalError ErrorType = iota
	// ValidationError represents missing or malformed required input.
	ValidationError
	// AuthError represents a missing or failed credential (no username oracle).
	AuthError
	// ForbiddenError represents a credential that is present but invalid or expired.
	ForbiddenError
	// NotFoundError represents an id with no matching record.
	NotFoundError
	// ConflictError represents a duplicate unique key.
	ConflictError
	// DatabaseError represents a persistence-layer failure.
	DatabaseError
)

// AppError carries a client-safe message plus the underlying cause for logging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status code.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewValidation creates a 400 validation error.
func NewValidation(message string) *AppError {
	return &AppError{Type: ValidationError, Message: message}
}

// NewAuth creates a 401 authentication error.
func NewAuth(message string) *AppError {
	return &AppError{Type: AuthError, Message: message}
}

// NewForbidden creates a 403 error carrying the verification failure for logging.
func NewForbidden(message string, err error) *AppError {
	return &AppError{Type: ForbiddenError, Message: message, Err: err}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *AppError {
	return &AppError{Type: NotFoundError, Message: message}
}

// NewConflict creates a 409 duplicate-key error.
func NewConflict(message string) *AppError {
	return &AppError{Type: ConflictError, Message: message}
}

// NewInternal wraps an unexpected runtime failure as a 500.
func NewInternal(message string, err error) *AppError {
	return &AppError{Type: InternalError, Message: message, Err: err}
}

// NewDatabase wraps a persistence failure as a 500.
func NewDatabase(message string, err error) *AppError {
	return &AppError{Type: DatabaseError, Message: message, Err: err}
}
