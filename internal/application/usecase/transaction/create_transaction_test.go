// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	created      []*entity.Transaction
	createErr    error
	stats        []entity.TypeStat
	statsSince   time.Time
	statsCalls   int
	sumResult    decimal.Decimal
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, txn)
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID, ownerID string) (*entity.Transaction, error) {
	for _, txn := range f.transactions {
		if txn.ID == id && txn.OwnerID == ownerID {
			return txn, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, txn := range f.transactions {
		if txn.OwnerID == filter.OwnerID {
			matched = append(matched, txn)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID, ownerID string) error {
	for _, txn := range f.transactions {
		if txn.ID == id && txn.OwnerID == ownerID {
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) DeleteByOwner(_ context.Context, _ string) error {
	return nil
}

func (f *fakeTransactionRepo) GetTypeStats(_ context.Context, _ string, since time.Time) ([]entity.TypeStat, error) {
	f.statsCalls++
	f.statsSince = since
	return f.stats, nil
}

func (f *fakeTransactionRepo) SumCategoryExpenses(_ context.Context, _, _ string, _ time.Time) (decimal.Decimal, error) {
	return f.sumResult, nil
}

type fakeStatsCache struct {
	entries     map[string][]entity.TypeStat
	invalidated []string
	getErr      error
	setErr      error
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: make(map[string][]entity.TypeStat)}
}

func (f *fakeStatsCache) GetTypeStats(_ context.Context, ownerID, period string) ([]entity.TypeStat, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	stats, ok := f.entries[ownerID+":"+period]
	return stats, ok, nil
}

func (f *fakeStatsCache) SetTypeStats(_ context.Context, ownerID, period string, stats []entity.TypeStat) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[ownerID+":"+period] = stats
	return nil
}

func (f *fakeStatsCache) InvalidateOwner(_ context.Context, ownerID string) error {
	f.invalidated = append(f.invalidated, ownerID)
	for key := range f.entries {
		if strings.HasPrefix(key, ownerID+":") {
			delete(f.entries, key)
		}
	}
	return nil
}

type fakeAlertChecker struct {
	checkedOwners     []string
	checkedCategories []string
}

func (f *fakeAlertChecker) CheckCategory(_ context.Context, ownerID, category string) {
	f.checkedOwners = append(f.checkedOwners, ownerID)
	f.checkedCategories = append(f.checkedCategories, category)
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a valid expense and checks budget alerts", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		cache := newFakeStatsCache()
		alerts := &fakeAlertChecker{}
		uc := NewCreateTransactionUseCase(repo, cache, alerts)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:  "user-a",
			Type:     entity.TransactionTypeExpense,
			Category: "Food",
			Amount:   decimal.NewFromFloat(25.5),
			Tags:     []string{"work"},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(repo.created) != 1 {
			t.Fatalf("expected 1 created transaction, got %d", len(repo.created))
		}
		if output.Transaction.ID == uuid.Nil {
			t.Error("expected a server-assigned id")
		}
		if output.Transaction.Date.IsZero() {
			t.Error("expected a defaulted date")
		}

		if len(cache.invalidated) != 1 || cache.invalidated[0] != "user-a" {
			t.Errorf("expected stats invalidation for user-a, got %v", cache.invalidated)
		}
		if len(alerts.checkedCategories) != 1 || alerts.checkedCategories[0] != "Food" {
			t.Errorf("expected alert check for Food, got %v", alerts.checkedCategories)
		}
	})

	t.Run("income never triggers an alert check", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		alerts := &fakeAlertChecker{}
		uc := NewCreateTransactionUseCase(repo, nil, alerts)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:  "user-a",
			Type:     entity.TransactionTypeIncome,
			Category: "Salary",
			Amount:   decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(alerts.checkedCategories) != 0 {
			t.Errorf("expected no alert checks for income, got %v", alerts.checkedCategories)
		}
	})

	t.Run("recurring frequency is cleared when recurring is false", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo, nil, nil)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:            "user-a",
			Type:               entity.TransactionTypeExpense,
			Category:           "Bills",
			Amount:             decimal.NewFromInt(50),
			Recurring:          false,
			RecurringFrequency: entity.FrequencyMonthly,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Transaction.RecurringFrequency != "" {
			t.Errorf("expected empty frequency, got %q", output.Transaction.RecurringFrequency)
		}
	})

	t.Run("rejects an unknown transaction type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, nil, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:  "user-a",
			Type:     "transfer",
			Category: "Food",
			Amount:   decimal.NewFromInt(10),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects a missing category", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, nil, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID: "user-a",
			Type:    entity.TransactionTypeExpense,
			Amount:  decimal.NewFromInt(10),
		})
		if !errors.Is(err, domainerror.ErrMissingCategory) {
			t.Errorf("expected ErrMissingCategory, got %v", err)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, nil, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:  "user-a",
			Type:     entity.TransactionTypeExpense,
			Category: "Food",
			Amount:   decimal.NewFromInt(-1),
		})
		if !errors.Is(err, domainerror.ErrNegativeAmount) {
			t.Errorf("expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("rejects an overlong description", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, nil, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:     "user-a",
			Type:        entity.TransactionTypeExpense,
			Category:    "Food",
			Amount:      decimal.NewFromInt(10),
			Description: strings.Repeat("x", MaxDescriptionLength+1),
		})
		if !errors.Is(err, domainerror.ErrDescriptionTooLong) {
			t.Errorf("expected ErrDescriptionTooLong, got %v", err)
		}
	})

	t.Run("rejects an unknown recurring frequency", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, nil, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:            "user-a",
			Type:               entity.TransactionTypeExpense,
			Category:           "Food",
			Amount:             decimal.NewFromInt(10),
			Recurring:          true,
			RecurringFrequency: "hourly",
		})
		if !errors.Is(err, domainerror.ErrInvalidFrequency) {
			t.Errorf("expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("repository failures do not reach the cache or alerts", func(t *testing.T) {
		repo := &fakeTransactionRepo{createErr: errors.New("db down")}
		cache := newFakeStatsCache()
		alerts := &fakeAlertChecker{}
		uc := NewCreateTransactionUseCase(repo, cache, alerts)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:  "user-a",
			Type:     entity.TransactionTypeExpense,
			Category: "Food",
			Amount:   decimal.NewFromInt(10),
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(cache.invalidated) != 0 {
			t.Errorf("expected no cache invalidation, got %v", cache.invalidated)
		}
		if len(alerts.checkedCategories) != 0 {
			t.Errorf("expected no alert checks, got %v", alerts.checkedCategories)
		}
	})
}
