// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrConflict         = errors.New("conflict")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("token invalid")
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeConflict         = "CONFLICT"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidOperation = "INVALID_OPERATION"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeTokenInvalid     = "TOKEN_INVALID"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// FieldError is one entry of the errors list on a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
	Errors     []FieldError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: status,
		Code:       code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func ValidationError(fields []FieldError) *AppError {
	return &AppError{
		Err:        ErrValidation,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidationFailed,
		Errors:     fields,
	}
}

func ConflictError(message string) *AppError {
	return NewAppError(ErrConflict, message, http.StatusBadRequest, CodeConflict)
}

func InvalidInputError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		CodeInvalidInput,
	)
}

func InvalidOperationError(message string) *AppError {
	return NewAppError(
		ErrInvalidOperation,
		message,
		http.StatusBadRequest,
		CodeInvalidOperation,
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Not authorized"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		CodeUnauthorized,
	)
}

func ForbiddenError(message string) *AppError {
	if message == "" {
		message = "Access denied"
	}
	return NewAppError(ErrForbidden, message, http.StatusForbidden, CodeForbidden)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrNotFound, message, http.StatusNotFound, CodeNotFound)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"Token has expired",
		http.StatusUnauthorized,
		CodeTokenExpired,
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"Invalid token",
		http.StatusUnauthorized,
		CodeTokenInvalid,
	)
}

// ToAppError classifies an arbitrary error into the response taxonomy.
// Errors already carrying an AppError keep it; bare sentinels get a generic
// message; anything else becomes a 500 with the raw message.
func ToAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NotFoundError("Resource not found")
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrConflict):
		return ConflictError("Duplicate field value entered")
	case errors.Is(err, ErrInvalidInput):
		return InvalidInputError("Invalid input")
	case errors.Is(err, ErrInvalidOperation):
		return InvalidOperationError("Invalid operation")
	case errors.Is(err, ErrTokenExpired):
		return TokenExpiredError()
	case errors.Is(err, ErrTokenInvalid):
		return TokenInvalidError()
	case errors.Is(err, ErrUnauthorized):
		return UnauthorizedError("")
	case errors.Is(err, ErrForbidden):
		return ForbiddenError("")
	}

	return NewAppError(
		err,
		err.Error(),
		http.StatusInternalServerError,
		CodeInternal,
	)
}
