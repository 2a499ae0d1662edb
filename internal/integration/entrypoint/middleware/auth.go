// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/profile"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// OwnerIDKey is the context key for the authenticated caller's owner ID.
	OwnerIDKey ContextKey = "owner_id"
	// OwnerEmailKey is the context key for the authenticated caller's email.
	OwnerEmailKey ContextKey = "owner_email"
)

// AuthMiddleware provides bearer token authentication middleware.
type AuthMiddleware struct {
	verifier      adapter.TokenVerifier
	ensureProfile *profile.EnsureProfileUseCase
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(verifier adapter.TokenVerifier, ensureProfile *profile.EnsureProfileUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:      verifier,
		ensureProfile: ensureProfile,
	}
}

// Authenticate returns a Gin middleware handler that enforces bearer auth.
// The verified token subject is the only source of the owner key; nothing
// from the request body or query is ever trusted for ownership.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message: "No token provided",
				Code:    string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message: "No token provided",
				Code:    string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message: "Invalid token",
				Code:    string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		// Lazily create the profile on first authenticated request.
		if m.ensureProfile != nil {
			if _, err := m.ensureProfile.Execute(c.Request.Context(), *identity); err != nil {
				slog.Error("Failed to ensure user profile", "error", err, "owner_id", identity.OwnerID)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Message: "Internal server error",
				})
				c.Abort()
				return
			}
		}

		c.Set(string(OwnerIDKey), identity.OwnerID)
		c.Set(string(OwnerEmailKey), identity.Email)

		c.Next()
	}
}

// GetOwnerIDFromContext extracts the owner ID from the Gin context.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	ownerID, exists := c.Get(string(OwnerIDKey))
	if !exists {
		return "", false
	}
	id, ok := ownerID.(string)
	return id, ok && id != ""
}

// GetOwnerEmailFromContext extracts the owner email from the Gin context.
func GetOwnerEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(OwnerEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}
