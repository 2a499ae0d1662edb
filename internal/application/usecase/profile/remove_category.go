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

// RemoveCategoryInput represents the input for removing a name from one of
// the profile's category lists.
type RemoveCategoryInput struct {
	OwnerID  string
	ListType string // "income" or "expense"
	Category string
}

// RemoveCategoryOutput returns the remaining category lists.
type RemoveCategoryOutput struct {
	Categories entity.CategoryLists
}

// RemoveCategoryUseCase handles category-list removal.
type RemoveCategoryUseCase struct {
	userRepo adapter.UserRepository
}

// NewRemoveCategoryUseCase creates a new RemoveCategoryUseCase instance.
func NewRemoveCategoryUseCase(userRepo adapter.UserRepository) *RemoveCategoryUseCase {
	return &RemoveCategoryUseCase{
		userRepo: userRepo,
	}
}

// Execute removes the name from the selected list. Removing a name that is
// not present is a no-op, matching list filtering semantics.
func (uc *RemoveCategoryUseCase) Execute(ctx context.Context, input RemoveCategoryInput) (*RemoveCategoryOutput, error) {
	if input.ListType != "income" && input.ListType != "expense" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidCategoryListType,
			"invalid category type",
			domainerror.ErrInvalidCategoryListType,
		)
	}

	user, err := uc.userRepo.FindByProviderUID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.ListType == "income" {
		user.Preferences.Categories.Income = removeName(user.Preferences.Categories.Income, input.Category)
	} else {
		user.Preferences.Categories.Expense = removeName(user.Preferences.Categories.Expense, input.Category)
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &RemoveCategoryOutput{Categories: user.Preferences.Categories}, nil
}

func removeName(names []string, target string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if name != target {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
