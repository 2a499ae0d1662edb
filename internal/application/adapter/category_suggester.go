// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggester proposes a category for a transaction description.
type CategorySuggester interface {
	// IsAvailable reports whether the suggester is configured.
	IsAvailable() bool

	// SuggestCategory picks the best matching category from candidates for the
	// given transaction description. Implementations may return a name outside
	// candidates when nothing fits; callers decide how to handle that.
	SuggestCategory(ctx context.Context, description string, candidates []string) (string, error)
}
