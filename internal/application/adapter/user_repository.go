// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fintrack/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
// Users are keyed by the identity-provider-issued uid; the verified bearer
// token's subject is the only source of that key.
type UserRepository interface {
	// Create creates a new local user record.
	Create(ctx context.Context, user *entity.User) error

	// FindByProviderUID retrieves a user by the provider-issued uid.
	// Returns domainerror.ErrUserNotFound when no profile exists.
	FindByProviderUID(ctx context.Context, providerUID string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user record for the given provider uid.
	// Returns domainerror.ErrUserNotFound when no profile exists.
	Delete(ctx context.Context, providerUID string) error
}
