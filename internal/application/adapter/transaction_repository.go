// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Unset fields are no-ops; OwnerID is always applied.
type TransactionFilter struct {
	OwnerID   string
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Inclusive
	Category  string
	Type      *entity.TransactionType
}

// TransactionRepository defines the interface for transaction persistence operations.
// Every lookup is scoped by owner id; a record owned by another user behaves
// exactly like a missing record.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by (id, owner).
	// Returns domainerror.ErrTransactionNotFound if absent or not owned.
	FindByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, sorted by date descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by (id, owner).
	// Returns domainerror.ErrTransactionNotFound if absent or not owned.
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error

	// DeleteByOwner removes all of an owner's transactions (account deletion).
	DeleteByOwner(ctx context.Context, ownerID string) error

	// GetTypeStats aggregates the owner's transactions with date >= since,
	// grouped by type. Each type appears at most once; order is unspecified.
	GetTypeStats(ctx context.Context, ownerID string, since time.Time) ([]entity.TypeStat, error)

	// SumCategoryExpenses sums the owner's expense amounts for one category
	// with date >= since. Used for budget alert checks.
	SumCategoryExpenses(ctx context.Context, ownerID, category string, since time.Time) (decimal.Decimal, error)
}
