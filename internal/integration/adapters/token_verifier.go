// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// IdentityClaims represents the claims issued by the identity provider.
type IdentityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// tokenVerifier implements the adapter.TokenVerifier interface for
// HMAC-signed identity provider tokens.
type tokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a new token verifier instance.
func NewTokenVerifier(secret string) adapter.TokenVerifier {
	return &tokenVerifier{
		secret: []byte(secret),
	}
}

// Verify parses and validates a bearer token and extracts the caller identity.
func (v *tokenVerifier) Verify(ctx context.Context, tokenString string) (*adapter.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"failed to parse token",
			err,
		)
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"token has no subject",
			nil,
		)
	}

	return &adapter.Identity{
		OwnerID:     claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}
