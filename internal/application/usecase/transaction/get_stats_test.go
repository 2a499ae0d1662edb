// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

func TestGetStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixedNow }

	sampleStats := []entity.TypeStat{
		{Type: entity.TransactionTypeExpense, Total: decimal.NewFromInt(50), Count: 2},
		{Type: entity.TransactionTypeIncome, Total: decimal.NewFromInt(100), Count: 1},
	}

	t.Run("defaults to the trailing week", func(t *testing.T) {
		repo := &fakeTransactionRepo{stats: sampleStats}
		uc := NewGetStatsUseCase(repo, nil).WithClock(clock)

		output, err := uc.Execute(ctx, GetStatsInput{OwnerID: "user-a"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		wantSince := fixedNow.AddDate(0, 0, -7)
		if !repo.statsSince.Equal(wantSince) {
			t.Errorf("expected window start %v, got %v", wantSince, repo.statsSince)
		}
		if len(output.Stats) != 2 {
			t.Errorf("expected 2 stat rows, got %d", len(output.Stats))
		}
	})

	t.Run("month window goes back one calendar month", func(t *testing.T) {
		repo := &fakeTransactionRepo{stats: sampleStats}
		uc := NewGetStatsUseCase(repo, nil).WithClock(clock)

		if _, err := uc.Execute(ctx, GetStatsInput{OwnerID: "user-a", Period: StatsPeriodMonth}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		wantSince := fixedNow.AddDate(0, -1, 0)
		if !repo.statsSince.Equal(wantSince) {
			t.Errorf("expected window start %v, got %v", wantSince, repo.statsSince)
		}
	})

	t.Run("year window goes back one year", func(t *testing.T) {
		repo := &fakeTransactionRepo{stats: sampleStats}
		uc := NewGetStatsUseCase(repo, nil).WithClock(clock)

		if _, err := uc.Execute(ctx, GetStatsInput{OwnerID: "user-a", Period: StatsPeriodYear}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		wantSince := fixedNow.AddDate(-1, 0, 0)
		if !repo.statsSince.Equal(wantSince) {
			t.Errorf("expected window start %v, got %v", wantSince, repo.statsSince)
		}
	})

	t.Run("rejects an unknown period", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeTransactionRepo{}, nil)

		_, err := uc.Execute(ctx, GetStatsInput{OwnerID: "user-a", Period: "decade"})
		if !errors.Is(err, domainerror.ErrInvalidStatsPeriod) {
			t.Errorf("expected ErrInvalidStatsPeriod, got %v", err)
		}
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		repo := &fakeTransactionRepo{stats: sampleStats}
		cache := newFakeStatsCache()
		cache.entries["user-a:week"] = sampleStats
		uc := NewGetStatsUseCase(repo, cache).WithClock(clock)

		output, err := uc.Execute(ctx, GetStatsInput{OwnerID: "user-a", Period: StatsPeriodWeek})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if repo.statsCalls != 0 {
			t.Errorf("expected no repository calls on cache hit, got %d", repo.statsCalls)
		}
		if len(output.Stats) != 2 {
			t.Errorf("expected 2 stat rows, got %d", len(output.Stats))
		}
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		repo := &fakeTransactionRepo{stats: sampleStats}
		cache := newFakeStatsCache()
		uc := NewGetStatsUseCase(repo, cache).WithClock(clock)

		if _, err := uc.Execute(ctx, GetStatsInput{OwnerID: "user-a", Period: StatsPeriodMonth}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if repo.statsCalls != 1 {
			t.Errorf("expected 1 repository call, got %d", repo.statsCalls)
		}
		if _, ok := cache.entries["user-a:month"]; !ok {
			t.Error("expected the cache to be populated after a miss")
		}
	})

	t.Run("cache failures fall through to the repository", func(t *testing.T) {
		repo := &fakeTransactionRepo{stats: sampleStats}
		cache := newFakeStatsCache()
		cache.getErr = errors.New("redis down")
		uc := NewGetStatsUseCase(repo, cache).WithClock(clock)

		output, err := uc.Execute(ctx, GetStatsInput{OwnerID: "user-a"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if repo.statsCalls != 1 {
			t.Errorf("expected 1 repository call, got %d", repo.statsCalls)
		}
		if len(output.Stats) != 2 {
			t.Errorf("expected 2 stat rows, got %d", len(output.Stats))
		}
	})
}
