package domain

import (
	"errors"
	"net/http"
)

// Stable machine-readable error codes exposed to API clients.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeDatabase        = "DATABASE_ERROR"
	CodeConfig          = "CONFIG_ERROR"
	CodeExternalService = "EXTERNAL_SERVICE_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError represents a business outcome with a stable code, a caller-facing
// message, and an optional wrapped cause that is logged but never rendered.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound builds the standard absence outcome for a resource kind.
func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

// AlreadyExists builds the standard conflict outcome for a resource kind.
func AlreadyExists(resource string) *AppError {
	return &AppError{Code: CodeAlreadyExists, Message: resource + " already exists"}
}

// Validation builds a client-facing validation outcome.
func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// DatabaseError wraps a storage failure. The cause stays server-side; callers
// only ever see the generic message.
func DatabaseError(err error) *AppError {
	return &AppError{Code: CodeDatabase, Message: "database error occurred", Err: err}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists reports whether err is or wraps an AppError with CodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsDatabaseError reports whether err is or wraps an AppError with CodeDatabase.
func IsDatabaseError(err error) bool {
	return hasCode(err, CodeDatabase)
}

// hasCode checks whether err is or wraps an *AppError with the given code.
func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ErrorCode extracts the stable code from an error. Unclassified errors
// resolve to CodeInternal so that no outcome leaves the taxonomy.
func ErrorCode(err error) string {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatusCode maps an error to the HTTP status class of its code.
func HTTPStatusCode(err error) int {
	switch ErrorCode(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
