// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	ID      uuid.UUID
	OwnerID string
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute removes the budget by (id, owner); records owned by other users
// surface as not found.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	return uc.budgetRepo.Delete(ctx, input.ID, input.OwnerID)
}
