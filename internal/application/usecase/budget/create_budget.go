// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	OwnerID       string
	Category      string
	Amount        decimal.Decimal
	Period        entity.BudgetPeriod // Defaults to monthly when empty
	StartDate     time.Time           // Defaults to now when zero
	Notifications *entity.BudgetNotifications
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	period := input.Period
	if period == "" {
		period = entity.BudgetPeriodMonthly
	}

	notifications := entity.BudgetNotifications{
		Enabled:   true,
		Threshold: entity.DefaultAlertThreshold,
	}
	if input.Notifications != nil {
		notifications = *input.Notifications
	}

	if err := validateBudgetFields(input.Category, input.Amount, period, notifications); err != nil {
		return nil, err
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}

	budget := entity.NewBudget(
		input.OwnerID,
		input.Category,
		input.Amount,
		period,
		startDate,
		notifications,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

// validateBudgetFields enforces the shared create/update invariants.
func validateBudgetFields(category string, amount decimal.Decimal, period entity.BudgetPeriod, notifications entity.BudgetNotifications) error {
	if category == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetCategory,
			"category is required",
			domainerror.ErrMissingBudgetCategory,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"amount must be non-negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}

	if !entity.IsValidBudgetPeriod(period) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be monthly or yearly",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if !entity.IsValidAlertThreshold(notifications.Threshold) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidThreshold,
			"notification threshold must be between 1 and 100",
			domainerror.ErrInvalidThreshold,
		)
	}

	return nil
}
