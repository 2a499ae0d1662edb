package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// statsCacheTTL bounds how stale a cached stats payload can get.
const statsCacheTTL = 60 * time.Second

// redisStatsCache implements the adapter.StatsCache interface on Redis.
type redisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a new Redis-backed stats cache.
func NewRedisStatsCache(client *redis.Client) adapter.StatsCache {
	return &redisStatsCache{
		client: client,
	}
}

func statsKey(ownerID, period string) string {
	return fmt.Sprintf("stats:%s:%s", ownerID, period)
}

// GetTypeStats returns the cached stats for (owner, period) and whether there was a hit.
func (c *redisStatsCache) GetTypeStats(ctx context.Context, ownerID, period string) ([]entity.TypeStat, bool, error) {
	raw, err := c.client.Get(ctx, statsKey(ownerID, period)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var stats []entity.TypeStat
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false, err
	}
	return stats, true, nil
}

// SetTypeStats stores the stats for (owner, period) with a short TTL.
func (c *redisStatsCache) SetTypeStats(ctx context.Context, ownerID, period string, stats []entity.TypeStat) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(ownerID, period), raw, statsCacheTTL).Err()
}

// InvalidateOwner drops all cached stats for an owner.
func (c *redisStatsCache) InvalidateOwner(ctx context.Context, ownerID string) error {
	keys := make([]string, 0, 3)
	for _, period := range []string{"week", "month", "year"} {
		keys = append(keys, statsKey(ownerID, period))
	}
	return c.client.Del(ctx, keys...).Err()
}
