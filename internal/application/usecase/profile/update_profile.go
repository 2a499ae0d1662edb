// Package profile contains user-profile use cases.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a partial profile update.
// Nil fields are left untouched. Category lists are merged set-union style,
// preserving first-seen order.
type UpdateProfileInput struct {
	OwnerID          string
	DisplayName      *string
	Currency         *entity.Currency
	Theme            *entity.Theme
	NotifyEmail      *bool
	NotifyPush       *bool
	BudgetAlerts     *bool
	WeeklyReport     *bool
	IncomeCategories []string
	ExpenseCategories []string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the partial merge and persists the result.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByProviderUID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}

	if input.Currency != nil {
		if !entity.IsValidCurrency(*input.Currency) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidCurrency,
				"invalid currency",
				domainerror.ErrInvalidCurrency,
			)
		}
		user.Preferences.Currency = *input.Currency
	}

	if input.Theme != nil {
		if !entity.IsValidTheme(*input.Theme) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidTheme,
				"invalid theme",
				domainerror.ErrInvalidTheme,
			)
		}
		user.Preferences.Theme = *input.Theme
	}

	if input.NotifyEmail != nil {
		user.Preferences.Notifications.Email = *input.NotifyEmail
	}
	if input.NotifyPush != nil {
		user.Preferences.Notifications.Push = *input.NotifyPush
	}
	if input.BudgetAlerts != nil {
		user.Preferences.Notifications.BudgetAlerts = *input.BudgetAlerts
	}
	if input.WeeklyReport != nil {
		user.Preferences.Notifications.WeeklyReport = *input.WeeklyReport
	}

	if len(input.IncomeCategories) > 0 {
		user.Preferences.Categories.Income = mergeCategoryNames(user.Preferences.Categories.Income, input.IncomeCategories)
	}
	if len(input.ExpenseCategories) > 0 {
		user.Preferences.Categories.Expense = mergeCategoryNames(user.Preferences.Categories.Expense, input.ExpenseCategories)
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}

// mergeCategoryNames appends new names to existing, dropping duplicates while
// keeping first-seen order.
func mergeCategoryNames(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))

	for _, name := range existing {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		merged = append(merged, name)
	}
	for _, name := range incoming {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		merged = append(merged, name)
	}

	return merged
}
