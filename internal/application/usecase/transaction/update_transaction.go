// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for a partial transaction update.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	ID                 uuid.UUID
	OwnerID            string
	Type               *entity.TransactionType
	Category           *string
	Amount             *decimal.Decimal
	Description        *string
	Date               *time.Time
	Tags               []string // Nil means unchanged
	Recurring          *bool
	RecurringFrequency *entity.RecurringFrequency
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	statsCache      adapter.StatsCache
	alertChecker    BudgetAlertChecker
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	statsCache adapter.StatsCache,
	alertChecker BudgetAlertChecker,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		statsCache:      statsCache,
		alertChecker:    alertChecker,
	}
}

// Execute resolves the transaction by (id, owner), applies the partial merge
// and persists the result. Records owned by other users surface as not found.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		txn.Type = *input.Type
	}
	if input.Category != nil {
		txn.Category = *input.Category
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.Tags != nil {
		txn.Tags = input.Tags
	}
	if input.Recurring != nil {
		txn.Recurring = *input.Recurring
	}
	if input.RecurringFrequency != nil {
		txn.RecurringFrequency = *input.RecurringFrequency
	}
	if !txn.Recurring {
		txn.RecurringFrequency = ""
	}

	if err := validateTransactionFields(txn.Type, txn.Category, txn.Amount, txn.Description, txn.RecurringFrequency); err != nil {
		return nil, err
	}

	// Callers cannot override server timestamps.
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateStats(ctx, uc.statsCache, input.OwnerID)

	if uc.alertChecker != nil && txn.Type == entity.TransactionTypeExpense {
		uc.alertChecker.CheckCategory(ctx, txn.OwnerID, txn.Category)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
