// Package error defines domain-specific errors for the finance tracker API.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is absent or owned by another user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryType is returned when the type is not income/expense/both.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrMissingCategoryName is returned when the name field is empty.
	ErrMissingCategoryName = errors.New("category name is required")

	// ErrCategoryAlreadyExists is returned when the owner already has a category
	// with the same name.
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010001"
	ErrCodeMissingCategoryName   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryAlreadyExists CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
