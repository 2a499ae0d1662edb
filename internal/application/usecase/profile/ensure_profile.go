// Package profile contains user-profile use cases.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// EnsureProfileUseCase materializes a local user record for a verified
// identity on first contact. The identity provider stays the source of truth;
// the local record only caches email/name and carries preferences.
type EnsureProfileUseCase struct {
	userRepo     adapter.UserRepository
	categoryRepo adapter.CategoryRepository
}

// NewEnsureProfileUseCase creates a new EnsureProfileUseCase instance.
func NewEnsureProfileUseCase(userRepo adapter.UserRepository, categoryRepo adapter.CategoryRepository) *EnsureProfileUseCase {
	return &EnsureProfileUseCase{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute finds the user for the identity, creating it with defaults when
// absent. Category seeding after user creation is not atomic with it; a
// failure there leaves the user without defaults and is only logged.
func (uc *EnsureProfileUseCase) Execute(ctx context.Context, identity adapter.Identity) (*entity.User, error) {
	user, err := uc.userRepo.FindByProviderUID(ctx, identity.OwnerID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	displayName := identity.DisplayName
	if displayName == "" && identity.Email != "" {
		displayName = strings.SplitN(identity.Email, "@", 2)[0]
	}

	user = entity.NewUser(identity.OwnerID, identity.Email, displayName)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := SeedDefaultCategories(ctx, uc.categoryRepo, user); err != nil {
		slog.Warn("Failed to seed default categories", "ownerID", user.ProviderUID, "error", err)
	}

	slog.Info("Materialized user profile", "ownerID", user.ProviderUID)
	return user, nil
}

// SeedDefaultCategories creates category records from the user's default lists.
func SeedDefaultCategories(ctx context.Context, categoryRepo adapter.CategoryRepository, user *entity.User) error {
	lists := user.Preferences.Categories
	categories := make([]*entity.Category, 0, len(lists.Income)+len(lists.Expense))

	for _, name := range lists.Income {
		categories = append(categories, entity.NewCategory(user.ProviderUID, name, entity.CategoryTypeIncome, "", true))
	}
	for _, name := range lists.Expense {
		categories = append(categories, entity.NewCategory(user.ProviderUID, name, entity.CategoryTypeExpense, "", true))
	}

	return categoryRepo.CreateBatch(ctx, categories)
}
