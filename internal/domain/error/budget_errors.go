// Package error defines domain-specific errors for the finance tracker API.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is absent or owned by another user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetPeriod is returned when the period is not monthly/yearly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidThreshold is returned when the alert threshold is outside [1,100].
	ErrInvalidThreshold = errors.New("notification threshold must be between 1 and 100")

	// ErrNegativeBudgetAmount is returned when the limit is negative.
	ErrNegativeBudgetAmount = errors.New("budget amount must be non-negative")

	// ErrMissingBudgetCategory is returned when the category field is empty.
	ErrMissingBudgetCategory = errors.New("budget category is required")
)

// BudgetErrorCode defines error codes for budget errors.
type BudgetErrorCode string

const (
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidThreshold      BudgetErrorCode = "BUD-010002"
	ErrCodeNegativeBudgetAmount  BudgetErrorCode = "BUD-010003"
	ErrCodeMissingBudgetCategory BudgetErrorCode = "BUD-010004"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
