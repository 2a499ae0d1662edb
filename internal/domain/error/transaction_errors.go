// Package error defines domain-specific errors for the finance tracker API.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is absent or owned
	// by another user. Ownership misses deliberately look identical to misses.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is not income/expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeAmount is returned when the amount is negative.
	ErrNegativeAmount = errors.New("amount must be non-negative")

	// ErrMissingCategory is returned when the category field is empty.
	ErrMissingCategory = errors.New("category is required")

	// ErrInvalidFrequency is returned for unknown recurring frequencies.
	ErrInvalidFrequency = errors.New("invalid recurring frequency")

	// ErrInvalidStatsPeriod is returned for unknown stats window selectors.
	ErrInvalidStatsPeriod = errors.New("invalid stats period")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeAmount         TransactionErrorCode = "TXN-010002"
	ErrCodeMissingCategory        TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidFrequency       TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidStatsPeriod     TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong     TransactionErrorCode = "TXN-010006"
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
