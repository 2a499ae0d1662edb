// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// UpdateBudgetInput represents the input for a partial budget update.
// Nil fields are left untouched.
type UpdateBudgetInput struct {
	ID                   uuid.UUID
	OwnerID              string
	Category             *string
	Amount               *decimal.Decimal
	Period               *entity.BudgetPeriod
	StartDate            *time.Time
	NotificationsEnabled *bool
	Threshold            *int
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute resolves the budget by (id, owner), applies the partial merge and
// persists the result.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		budget.Category = *input.Category
	}
	if input.Amount != nil {
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		budget.Period = *input.Period
	}
	if input.StartDate != nil {
		budget.StartDate = *input.StartDate
	}
	if input.NotificationsEnabled != nil {
		budget.Notifications.Enabled = *input.NotificationsEnabled
	}
	if input.Threshold != nil {
		budget.Notifications.Threshold = *input.Threshold
	}

	if err := validateBudgetFields(budget.Category, budget.Amount, budget.Period, budget.Notifications); err != nil {
		return nil, err
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
