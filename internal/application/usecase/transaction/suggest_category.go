// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	OwnerID     string
	Description string
}

// SuggestCategoryOutput represents the output of a category suggestion.
type SuggestCategoryOutput struct {
	Category string
}

// SuggestCategoryUseCase proposes a category for a transaction description
// using the configured AI suggester, constrained to the owner's category list.
type SuggestCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	suggester    adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(categoryRepo adapter.CategoryRepository, suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo: categoryRepo,
		suggester:    suggester,
	}
}

// Execute performs the suggestion. Falls back to "Other" when the suggester
// answers with a name outside the owner's categories.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"description is required",
			nil,
		)
	}

	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, fmt.Errorf("category suggestion service is not configured")
	}

	categories, err := uc.categoryRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	candidates := make([]string, 0, len(categories))
	for _, c := range categories {
		candidates = append(candidates, c.Name)
	}

	suggestion, err := uc.suggester.SuggestCategory(ctx, input.Description, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest category: %w", err)
	}

	for _, name := range candidates {
		if name == suggestion {
			return &SuggestCategoryOutput{Category: suggestion}, nil
		}
	}

	return &SuggestCategoryOutput{Category: "Other"}, nil
}
