// Package profile contains user-profile use cases.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// CreateProfileInput represents the input for explicit profile registration.
type CreateProfileInput struct {
	Identity    adapter.Identity
	DisplayName string
}

// CreateProfileOutput represents the output of explicit profile registration.
type CreateProfileOutput struct {
	User *entity.User
}

// CreateProfileUseCase handles explicit profile registration. Unlike the
// ensure path it fails when the profile already exists.
type CreateProfileUseCase struct {
	userRepo     adapter.UserRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateProfileUseCase creates a new CreateProfileUseCase instance.
func NewCreateProfileUseCase(userRepo adapter.UserRepository, categoryRepo adapter.CategoryRepository) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the registration.
func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	existing, err := uc.userRepo.FindByProviderUID(ctx, input.Identity.OwnerID)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeProfileExists,
			"user profile already exists",
			domainerror.ErrProfileAlreadyExists,
		)
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.Identity.DisplayName
	}

	user := entity.NewUser(input.Identity.OwnerID, input.Identity.Email, displayName)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := SeedDefaultCategories(ctx, uc.categoryRepo, user); err != nil {
		slog.Warn("Failed to seed default categories", "ownerID", user.ProviderUID, "error", err)
	}

	return &CreateProfileOutput{User: user}, nil
}
