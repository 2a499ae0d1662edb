package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

func newTestStatsCache(t *testing.T) (adapter.StatsCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStatsCache(client), server
}

func TestRedisStatsCache(t *testing.T) {
	ctx := context.Background()

	stats := []entity.TypeStat{
		{Type: entity.TransactionTypeIncome, Total: decimal.NewFromInt(100), Count: 1},
		{Type: entity.TransactionTypeExpense, Total: decimal.NewFromFloat(50.25), Count: 2},
	}

	t.Run("round trips stats through the cache", func(t *testing.T) {
		cache, _ := newTestStatsCache(t)

		if err := cache.SetTypeStats(ctx, "user-a", "week", stats); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		cached, hit, err := cache.GetTypeStats(ctx, "user-a", "week")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !hit {
			t.Fatal("expected a cache hit")
		}
		if len(cached) != 2 {
			t.Fatalf("expected 2 stat rows, got %d", len(cached))
		}
		if !cached[1].Total.Equal(decimal.NewFromFloat(50.25)) {
			t.Errorf("expected total 50.25, got %s", cached[1].Total)
		}
		if cached[1].Count != 2 {
			t.Errorf("expected count 2, got %d", cached[1].Count)
		}
	})

	t.Run("a missing key is a miss, not an error", func(t *testing.T) {
		cache, _ := newTestStatsCache(t)

		cached, hit, err := cache.GetTypeStats(ctx, "user-a", "week")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if hit {
			t.Error("expected a cache miss")
		}
		if cached != nil {
			t.Errorf("expected nil stats, got %v", cached)
		}
	})

	t.Run("entries are scoped by owner and period", func(t *testing.T) {
		cache, _ := newTestStatsCache(t)

		if err := cache.SetTypeStats(ctx, "user-a", "week", stats); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, hit, _ := cache.GetTypeStats(ctx, "user-a", "month"); hit {
			t.Error("expected a miss for another period")
		}
		if _, hit, _ := cache.GetTypeStats(ctx, "user-b", "week"); hit {
			t.Error("expected a miss for another owner")
		}
	})

	t.Run("invalidation drops every period for the owner", func(t *testing.T) {
		cache, _ := newTestStatsCache(t)

		for _, period := range []string{"week", "month", "year"} {
			if err := cache.SetTypeStats(ctx, "user-a", period, stats); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}
		if err := cache.SetTypeStats(ctx, "user-b", "week", stats); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := cache.InvalidateOwner(ctx, "user-a"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, period := range []string{"week", "month", "year"} {
			if _, hit, _ := cache.GetTypeStats(ctx, "user-a", period); hit {
				t.Errorf("expected %s to be invalidated", period)
			}
		}
		if _, hit, _ := cache.GetTypeStats(ctx, "user-b", "week"); !hit {
			t.Error("expected other owners to keep their entries")
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		cache, server := newTestStatsCache(t)

		if err := cache.SetTypeStats(ctx, "user-a", "week", stats); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		server.FastForward(statsCacheTTL + time.Second)

		if _, hit, _ := cache.GetTypeStats(ctx, "user-a", "week"); hit {
			t.Error("expected the entry to expire")
		}
	})
}
