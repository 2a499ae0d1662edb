// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the budget stats overview.
type GetOverviewInput struct {
	OwnerID string
}

// GetOverviewOutput represents the aggregated view over all of the owner's budgets.
type GetOverviewOutput struct {
	Overview entity.BudgetOverview
}

// GetOverviewUseCase computes the budget stats overview.
type GetOverviewUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(budgetRepo adapter.BudgetRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute sums limits, counts budgets per category and per period.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	budgets, err := uc.budgetRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	overview := entity.BudgetOverview{
		TotalBudget:    decimal.Zero,
		CategoryCounts: make(map[string]int),
		PeriodDistribution: map[entity.BudgetPeriod]int{
			entity.BudgetPeriodMonthly: 0,
			entity.BudgetPeriodYearly:  0,
		},
	}

	for _, b := range budgets {
		overview.TotalBudget = overview.TotalBudget.Add(b.Amount)
		overview.ActiveBudgets++
		overview.CategoryCounts[b.Category]++
		overview.PeriodDistribution[b.Period]++
	}

	return &GetOverviewOutput{Overview: overview}, nil
}
