// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// BudgetAlertChecker is implemented by the budget package. It is invoked after
// expense writes and must never fail the write itself.
type BudgetAlertChecker interface {
	CheckCategory(ctx context.Context, ownerID, category string)
}

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	OwnerID            string
	Type               entity.TransactionType
	Category           string
	Amount             decimal.Decimal
	Description        string
	Date               time.Time
	Tags               []string
	Recurring          bool
	RecurringFrequency entity.RecurringFrequency
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	statsCache      adapter.StatsCache
	alertChecker    BudgetAlertChecker
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
// statsCache and alertChecker are optional.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	statsCache adapter.StatsCache,
	alertChecker BudgetAlertChecker,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		statsCache:      statsCache,
		alertChecker:    alertChecker,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Type, input.Category, input.Amount, input.Description, input.RecurringFrequency); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	frequency := input.RecurringFrequency
	if !input.Recurring {
		frequency = ""
	}

	txn := entity.NewTransaction(
		input.OwnerID,
		input.Type,
		input.Category,
		input.Amount,
		input.Description,
		date,
		input.Tags,
		input.Recurring,
		frequency,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateStats(ctx, uc.statsCache, input.OwnerID)

	// Budget alerts only apply to spending.
	if uc.alertChecker != nil && txn.Type == entity.TransactionTypeExpense {
		uc.alertChecker.CheckCategory(ctx, txn.OwnerID, txn.Category)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateTransactionFields enforces the shared create/update invariants.
func validateTransactionFields(
	transactionType entity.TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	frequency entity.RecurringFrequency,
) error {
	if !entity.IsValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must be non-negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !entity.IsValidRecurringFrequency(frequency) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidFrequency,
			"recurring frequency must be daily, weekly, monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	return nil
}

// invalidateStats drops the owner's cached stats. Cache failures are logged,
// never propagated.
func invalidateStats(ctx context.Context, cache adapter.StatsCache, ownerID string) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateOwner(ctx, ownerID); err != nil {
		slog.Debug("Failed to invalidate stats cache", "ownerID", ownerID, "error", err)
	}
}
