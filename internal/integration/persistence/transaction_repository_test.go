// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.TransactionModel{}, &model.BudgetModel{}, &model.UserModel{}, &model.CategoryModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, ownerID string, txnType entity.TransactionType, category string, amount float64, date time.Time) *entity.Transaction {
	t.Helper()

	txn := entity.NewTransaction(ownerID, txnType, category, decimal.NewFromFloat(amount), "", date, []string{"seeded"}, false, "")
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return txn
}

func TestTransactionRepository_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	owned := seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Food", 25.5, date)

	t.Run("owner can read their transaction", func(t *testing.T) {
		found, err := repo.FindByID(ctx, owned.ID, "user-a")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.Category != "Food" {
			t.Errorf("expected Food, got %s", found.Category)
		}
		if !found.Amount.Equal(decimal.NewFromFloat(25.5)) {
			t.Errorf("expected 25.5, got %s", found.Amount)
		}
		if len(found.Tags) != 1 || found.Tags[0] != "seeded" {
			t.Errorf("expected tags to round trip, got %v", found.Tags)
		}
	})

	t.Run("another user sees not found", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, owned.ID, "user-b"); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("another user cannot delete", func(t *testing.T) {
		if err := repo.Delete(ctx, owned.ID, "user-b"); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
		if _, err := repo.FindByID(ctx, owned.ID, "user-a"); err != nil {
			t.Errorf("expected the record to survive, got %v", err)
		}
	})

	t.Run("deleting an unknown id reports not found", func(t *testing.T) {
		if err := repo.Delete(ctx, uuid.New(), "user-a"); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("owner can delete", func(t *testing.T) {
		if err := repo.Delete(ctx, owned.ID, "user-a"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := repo.FindByID(ctx, owned.ID, "user-a"); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound after delete, got %v", err)
		}
	})
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))

	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, repo, "user-a", entity.TransactionTypeIncome, "Salary", 1000, jan)
	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Food", 40, feb)
	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Food", 10, mar)
	seedTransaction(t, repo, "user-b", entity.TransactionTypeExpense, "Food", 99, mar)

	t.Run("lists only the owner's transactions, newest first", func(t *testing.T) {
		transactions, err := repo.FindByFilter(ctx, adapter.TransactionFilter{OwnerID: "user-a"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		if !transactions[0].Date.Equal(mar) {
			t.Errorf("expected newest first, got %v", transactions[0].Date)
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		transactions, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			OwnerID:   "user-a",
			StartDate: &feb,
			EndDate:   &feb,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(transactions))
		}
		if !transactions[0].Amount.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected the February expense, got %s", transactions[0].Amount)
		}
	})

	t.Run("filters by category and type", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		transactions, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			OwnerID:  "user-a",
			Category: "Food",
			Type:     &expense,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
	})
}

func TestTransactionRepository_GetTypeStats(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))

	recent := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	old := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, repo, "user-a", entity.TransactionTypeIncome, "Salary", 100, recent)
	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Food", 40, recent)
	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Transport", 10, recent)
	// Outside the window and owned by someone else, respectively.
	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Food", 500, old)
	seedTransaction(t, repo, "user-b", entity.TransactionTypeExpense, "Food", 999, recent)

	since := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	stats, err := repo.GetTypeStats(ctx, "user-a", since)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("expected 2 stat rows, got %d", len(stats))
	}

	byType := make(map[entity.TransactionType]entity.TypeStat, len(stats))
	for _, stat := range stats {
		byType[stat.Type] = stat
	}

	income := byType[entity.TransactionTypeIncome]
	if !income.Total.Equal(decimal.NewFromInt(100)) || income.Count != 1 {
		t.Errorf("expected income 100/1, got %s/%d", income.Total, income.Count)
	}

	expense := byType[entity.TransactionTypeExpense]
	if !expense.Total.Equal(decimal.NewFromInt(50)) || expense.Count != 2 {
		t.Errorf("expected expense 50/2, got %s/%d", expense.Total, expense.Count)
	}
}

func TestTransactionRepository_SumCategoryExpenses(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))

	recent := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	since := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Food", 40, recent)
	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Food", 20, recent)
	// Income, another category, another owner: all excluded.
	seedTransaction(t, repo, "user-a", entity.TransactionTypeIncome, "Food", 1000, recent)
	seedTransaction(t, repo, "user-a", entity.TransactionTypeExpense, "Transport", 30, recent)
	seedTransaction(t, repo, "user-b", entity.TransactionTypeExpense, "Food", 99, recent)

	spent, err := repo.SumCategoryExpenses(ctx, "user-a", "Food", since)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !spent.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected 60, got %s", spent)
	}

	t.Run("no matching rows sums to zero", func(t *testing.T) {
		spent, err := repo.SumCategoryExpenses(ctx, "user-a", "Travel", since)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !spent.IsZero() {
			t.Errorf("expected zero, got %s", spent)
		}
	})
}
