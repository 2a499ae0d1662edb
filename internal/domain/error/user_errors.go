// Package error defines domain-specific errors for the finance tracker API.
package error

import "errors"

// User/profile domain errors.
var (
	// ErrUserNotFound is returned when no local profile exists for the caller.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileAlreadyExists is returned on explicit registration when the
	// caller's profile was already materialized.
	ErrProfileAlreadyExists = errors.New("user profile already exists")

	// ErrInvalidCurrency is returned for unsupported currency codes.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidTheme is returned for unsupported themes.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidCategoryListType is returned when a category list selector is
	// neither "income" nor "expense".
	ErrInvalidCategoryListType = errors.New("invalid category type")
)

// UserErrorCode defines error codes for user errors.
type UserErrorCode string

const (
	ErrCodeProfileExists           UserErrorCode = "USR-010001"
	ErrCodeInvalidCurrency         UserErrorCode = "USR-010002"
	ErrCodeInvalidTheme            UserErrorCode = "USR-010003"
	ErrCodeInvalidCategoryListType UserErrorCode = "USR-010004"
	ErrCodeUserNotFound            UserErrorCode = "USR-020001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
