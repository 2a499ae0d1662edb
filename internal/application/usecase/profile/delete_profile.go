// Package profile contains user-profile use cases.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrack/backend/internal/application/adapter"
)

// DeleteProfileInput represents the input for account deletion.
type DeleteProfileInput struct {
	OwnerID string
}

// DeleteProfileUseCase handles account deletion: the user record plus all
// owned transactions, budgets and categories. The steps are not guarded by a
// multi-record transaction; a mid-sequence failure leaves partial data behind
// and is surfaced to the caller for a retry.
type DeleteProfileUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
}

// NewDeleteProfileUseCase creates a new DeleteProfileUseCase instance.
func NewDeleteProfileUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute removes the caller's account and owned records.
func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) error {
	// Resolve first so a missing profile surfaces as not found.
	if _, err := uc.userRepo.FindByProviderUID(ctx, input.OwnerID); err != nil {
		return err
	}

	if err := uc.transactionRepo.DeleteByOwner(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	if err := uc.budgetRepo.DeleteByOwner(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("failed to delete budgets: %w", err)
	}
	if err := uc.categoryRepo.DeleteByOwner(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	if err := uc.userRepo.Delete(ctx, input.OwnerID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Info("Deleted user account", "ownerID", input.OwnerID)
	return nil
}
