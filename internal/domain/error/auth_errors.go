// Package error defines domain-specific errors for the finance tracker API.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrMissingToken is returned when no bearer credential is presented.
	ErrMissingToken = errors.New("no token provided")

	// ErrInvalidToken is returned when a token is invalid, malformed or expired.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
