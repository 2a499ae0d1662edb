// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Unset filters are no-ops.
type ListTransactionsInput struct {
	OwnerID   string
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Type      *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions,
// sorted by date descending.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := adapter.TransactionFilter{
		OwnerID:   input.OwnerID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
		Type:      input.Type,
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
