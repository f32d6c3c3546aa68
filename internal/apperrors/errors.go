package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is not allowed to access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates that the stored refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
// Repositories use it for infrastructure failures (transactions, connections).
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError creates an AppError with a 400 status code.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}

// NewUnauthorizedError creates an AppError with a 401 status code.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: 401, Message: message}
}

// NewInternalServerError creates an AppError with a 500 status code.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: 500, Message: message}
}

// NewGatewayTimeoutError creates an AppError with a 504 status code.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: 504, Message: message}
}
