// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// RecurringFrequency represents how often a recurring transaction repeats.
type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// Transaction represents a financial transaction.
//
// OwnerID is the identity-provider-issued user id carried in the verified
// bearer token; every repository query is scoped by it.
type Transaction struct {
	ID                 uuid.UUID
	OwnerID            string
	Type               TransactionType
	Category           string
	Amount             decimal.Decimal // Always non-negative; Type carries the sign semantics
	Description        string
	Date               time.Time
	Tags               []string
	Recurring          bool
	RecurringFrequency RecurringFrequency // Empty unless Recurring is true
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewTransaction creates a new Transaction entity with server-assigned id and timestamps.
func NewTransaction(
	ownerID string,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	date time.Time,
	tags []string,
	recurring bool,
	frequency RecurringFrequency,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:                 uuid.New(),
		OwnerID:            ownerID,
		Type:               transactionType,
		Category:           category,
		Amount:             amount,
		Description:        description,
		Date:               date,
		Tags:               tags,
		Recurring:          recurring,
		RecurringFrequency: frequency,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsValidTransactionType reports whether t is one of the known transaction types.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// IsValidRecurringFrequency reports whether f is a known frequency. The empty
// string is valid and means "not recurring".
func IsValidRecurringFrequency(f RecurringFrequency) bool {
	switch f {
	case "", FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// TypeStat is one row of the transaction stats aggregation: all of an owner's
// transactions of a given type inside the requested window.
type TypeStat struct {
	Type  TransactionType
	Total decimal.Decimal
	Count int64
}
