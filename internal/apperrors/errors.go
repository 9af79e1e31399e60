// Package apperrors defines the error taxonomy shared by storage, the
// settlement engine and the RPC layer.
package apperrors

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	NotFoundError   ErrorType = "NOT_FOUND"
	ValidationError ErrorType = "VALIDATION_ERROR"
	ParseError      ErrorType = "PARSE_ERROR"
	AuthError       ErrorType = "AUTHENTICATION_ERROR"
	ForbiddenError  ErrorType = "FORBIDDEN"
	ConflictError   ErrorType = "CONFLICT"
	InternalError   ErrorType = "INTERNAL_ERROR"
)

// AppError represents a structured application error.
type AppError struct {
	Type    ErrorType
	Message string
	Detail  string

	// Entity and ID are set for NotFound errors.
	Entity string
	ID     string

	Raw error
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// Is matches any AppError of the same type, so callers can write
// errors.Is(err, apperrors.ErrNotFound).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Type == e.Type && t.Message == "" && t.Entity == ""
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound   = &AppError{Type: NotFoundError}
	ErrValidation = &AppError{Type: ValidationError}
	ErrParse      = &AppError{Type: ParseError}
	ErrAuth       = &AppError{Type: AuthError}
	ErrForbidden  = &AppError{Type: ForbiddenError}
	ErrConflict   = &AppError{Type: ConflictError}
)

// New creates a new AppError
func New(errType ErrorType, message, detail string) *AppError {
	return &AppError{Type: errType, Message: message, Detail: detail}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Detail:  err.Error(),
		Raw:     err,
	}
}

func NotFound(entity string, id string) *AppError {
	return &AppError{
		Type:    NotFoundError,
		Message: fmt.Sprintf("%s not found", entity),
		Detail:  fmt.Sprintf("ID: %s", id),
		Entity:  entity,
		ID:      id,
	}
}

func ValidationFailed(message, detail string) *AppError {
	return &AppError{Type: ValidationError, Message: message, Detail: detail}
}

func ParseFailed(message string, err error) *AppError {
	e := &AppError{Type: ParseError, Message: message, Raw: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

func Unauthenticated(message string) *AppError {
	return &AppError{Type: AuthError, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Type: ForbiddenError, Message: message}
}

func Conflict(message, detail string) *AppError {
	return &AppError{Type: ConflictError, Message: message, Detail: detail}
}

// TypeOf returns the ErrorType of the first AppError in err's chain, or
// InternalError when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return InternalError
}
