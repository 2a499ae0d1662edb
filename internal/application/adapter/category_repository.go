// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fintrack/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch creates several categories at once (default seeding).
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// FindByOwner retrieves all of an owner's categories, sorted by name ascending.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Category, error)

	// FindByOwnerAndName retrieves a single category by (owner, name).
	// Returns domainerror.ErrCategoryNotFound when absent.
	FindByOwnerAndName(ctx context.Context, ownerID, name string) (*entity.Category, error)

	// DeleteByOwner removes all of an owner's categories (account deletion).
	DeleteByOwner(ctx context.Context, ownerID string) error
}
