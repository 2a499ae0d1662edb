// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// StatsPeriod selects the aggregation window for transaction stats.
type StatsPeriod string

const (
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
	StatsPeriodYear  StatsPeriod = "year"
)

// GetStatsInput represents the input for the stats aggregation.
type GetStatsInput struct {
	OwnerID string
	Period  StatsPeriod // Defaults to week when empty
}

// GetStatsOutput represents the output of the stats aggregation. Each type
// appears at most once; slice order is unspecified.
type GetStatsOutput struct {
	Stats []entity.TypeStat
}

// GetStatsUseCase computes per-type totals over a trailing window.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	statsCache      adapter.StatsCache
	now             func() time.Time
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance. statsCache is optional.
func NewGetStatsUseCase(transactionRepo adapter.TransactionRepository, statsCache adapter.StatsCache) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
		statsCache:      statsCache,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test hook.
func (uc *GetStatsUseCase) WithClock(now func() time.Time) *GetStatsUseCase {
	uc.now = now
	return uc
}

// Execute performs the aggregation: transactions dated on or after the window
// start, grouped by type with sum and count per type.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	period := input.Period
	if period == "" {
		period = StatsPeriodWeek
	}

	since, err := uc.windowStart(period)
	if err != nil {
		return nil, err
	}

	if uc.statsCache != nil {
		cached, hit, cerr := uc.statsCache.GetTypeStats(ctx, input.OwnerID, string(period))
		if cerr != nil {
			slog.Debug("Stats cache read failed", "ownerID", input.OwnerID, "error", cerr)
		} else if hit {
			return &GetStatsOutput{Stats: cached}, nil
		}
	}

	stats, err := uc.transactionRepo.GetTypeStats(ctx, input.OwnerID, since)
	if err != nil {
		return nil, err
	}

	if uc.statsCache != nil {
		if cerr := uc.statsCache.SetTypeStats(ctx, input.OwnerID, string(period), stats); cerr != nil {
			slog.Debug("Stats cache write failed", "ownerID", input.OwnerID, "error", cerr)
		}
	}

	return &GetStatsOutput{Stats: stats}, nil
}

// windowStart computes now minus the calendar offset for the period:
// 7 days for week, one calendar month for month, one year for year.
func (uc *GetStatsUseCase) windowStart(period StatsPeriod) (time.Time, error) {
	now := uc.now()
	switch period {
	case StatsPeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case StatsPeriodMonth:
		return now.AddDate(0, -1, 0), nil
	case StatsPeriodYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidStatsPeriod,
			"period must be week, month or year",
			domainerror.ErrInvalidStatsPeriod,
		)
	}
}
