// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fintrack/backend/internal/domain/entity"
)

// StatsCache caches per-owner transaction stats for a short TTL.
// It is best-effort: a miss or a cache failure must never fail the request.
type StatsCache interface {
	// GetTypeStats returns the cached stats for (owner, period) and whether
	// there was a hit.
	GetTypeStats(ctx context.Context, ownerID, period string) ([]entity.TypeStat, bool, error)

	// SetTypeStats stores the stats for (owner, period).
	SetTypeStats(ctx context.Context, ownerID, period string, stats []entity.TypeStat) error

	// InvalidateOwner drops all cached stats for an owner. Called after any
	// transaction write.
	InvalidateOwner(ctx context.Context, ownerID string) error
}
