// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by (id, owner).
	// Returns domainerror.ErrBudgetNotFound if absent or not owned.
	FindByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.Budget, error)

	// FindByOwner retrieves all budgets for an owner, newest start date first.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Budget, error)

	// FindByOwnerAndCategory retrieves the owner's budget for a category, if any.
	// Returns domainerror.ErrBudgetNotFound when no budget covers the category.
	FindByOwnerAndCategory(ctx context.Context, ownerID, category string) (*entity.Budget, error)

	// Update persists changes to an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget by (id, owner).
	// Returns domainerror.ErrBudgetNotFound if absent or not owned.
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error

	// DeleteByOwner removes all of an owner's budgets (account deletion).
	DeleteByOwner(ctx context.Context, ownerID string) error
}
