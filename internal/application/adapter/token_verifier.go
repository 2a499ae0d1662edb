// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// Identity is the verified caller identity extracted from a bearer credential.
// OwnerID is the provider-issued uid and is the owner key for every resource:
// the auth middleware puts it on the request context and the persistence layer
// scopes every query and mutation by it.
type Identity struct {
	OwnerID     string
	Email       string
	DisplayName string
}

// TokenVerifier validates a bearer credential against the identity provider's
// signing material and returns the caller identity.
type TokenVerifier interface {
	// Verify parses and validates the raw token string.
	// Returns domainerror.ErrInvalidToken for malformed, badly signed or
	// expired tokens.
	Verify(ctx context.Context, token string) (*Identity, error)
}
