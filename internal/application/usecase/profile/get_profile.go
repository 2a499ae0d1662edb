// Package profile contains user-profile use cases.
package profile

import (
	"context"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// GetProfileInput represents the input for fetching the caller's profile.
type GetProfileInput struct {
	OwnerID string
}

// GetProfileOutput represents the output of fetching the caller's profile.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase handles profile retrieval.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute fetches the caller's profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByProviderUID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &GetProfileOutput{User: user}, nil
}
