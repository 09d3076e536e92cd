package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user does not own the resource being acted on.
var ErrForbidden = errors.New("not authorized for this resource")

// ErrInvalidCredential indicates that the step-up password re-verification failed.
var ErrInvalidCredential = errors.New("invalid credential")

// ErrInsufficientFunds indicates that the sender's balance cannot cover the transfer amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInsufficientGrant indicates that an extra-balance grant cannot cover the requested amount.
var ErrInsufficientGrant = errors.New("insufficient grant remainder")

// ErrGrantNotAvailable indicates that a grant is no longer open (exhausted or cancelled).
var ErrGrantNotAvailable = errors.New("grant not available")

// AppError wraps an underlying error with a status code and a caller-facing message.
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

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
