// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	f.budgets = append(f.budgets, budget)
	return nil
}

func (f *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID, ownerID string) (*entity.Budget, error) {
	for _, b := range f.budgets {
		if b.ID == id && b.OwnerID == ownerID {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (f *fakeBudgetRepo) FindByOwner(_ context.Context, ownerID string) ([]*entity.Budget, error) {
	var matched []*entity.Budget
	for _, b := range f.budgets {
		if b.OwnerID == ownerID {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (f *fakeBudgetRepo) FindByOwnerAndCategory(_ context.Context, ownerID, category string) (*entity.Budget, error) {
	for _, b := range f.budgets {
		if b.OwnerID == ownerID && b.Category == category {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (f *fakeBudgetRepo) Update(_ context.Context, _ *entity.Budget) error {
	return nil
}

func (f *fakeBudgetRepo) Delete(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (f *fakeBudgetRepo) DeleteByOwner(_ context.Context, _ string) error {
	return nil
}

type fakeAlertTransactionRepo struct {
	spent     decimal.Decimal
	sumSince  time.Time
	sumCalled bool
}

func (f *fakeAlertTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (f *fakeAlertTransactionRepo) FindByID(_ context.Context, _ uuid.UUID, _ string) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeAlertTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeAlertTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (f *fakeAlertTransactionRepo) Delete(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (f *fakeAlertTransactionRepo) DeleteByOwner(_ context.Context, _ string) error {
	return nil
}

func (f *fakeAlertTransactionRepo) GetTypeStats(_ context.Context, _ string, _ time.Time) ([]entity.TypeStat, error) {
	return nil, nil
}

func (f *fakeAlertTransactionRepo) SumCategoryExpenses(_ context.Context, _, _ string, since time.Time) (decimal.Decimal, error) {
	f.sumCalled = true
	f.sumSince = since
	return f.spent, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ProviderUID] = user
	return nil
}

func (f *fakeUserRepo) FindByProviderUID(_ context.Context, providerUID string) (*entity.User, error) {
	user, ok := f.users[providerUID]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ProviderUID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, providerUID string) error {
	delete(f.users, providerUID)
	return nil
}

type fakeEmailService struct {
	queued []adapter.QueueBudgetAlertInput
}

func (f *fakeEmailService) QueueBudgetAlertEmail(_ context.Context, input adapter.QueueBudgetAlertInput) error {
	f.queued = append(f.queued, input)
	return nil
}

func newAlertFixture(spent int64) (*fakeBudgetRepo, *fakeAlertTransactionRepo, *fakeUserRepo, *fakeEmailService) {
	budgetRepo := &fakeBudgetRepo{
		budgets: []*entity.Budget{
			entity.NewBudget(
				"user-a",
				"Food",
				decimal.NewFromInt(100),
				entity.BudgetPeriodMonthly,
				time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
				entity.BudgetNotifications{Enabled: true, Threshold: entity.DefaultAlertThreshold},
			),
		},
	}
	transactionRepo := &fakeAlertTransactionRepo{spent: decimal.NewFromInt(spent)}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"user-a": entity.NewUser("user-a", "user-a@example.com", "User A"),
	}}
	return budgetRepo, transactionRepo, userRepo, &fakeEmailService{}
}

func TestAlertChecker_CheckCategory(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixedNow }

	t.Run("crossing the threshold queues an alert", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, emails := newAlertFixture(90)
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, emails).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Food")

		if len(emails.queued) != 1 {
			t.Fatalf("expected 1 queued alert, got %d", len(emails.queued))
		}

		alert := emails.queued[0]
		if alert.UserEmail != "user-a@example.com" {
			t.Errorf("expected user-a@example.com, got %s", alert.UserEmail)
		}
		if alert.Percentage != 90 {
			t.Errorf("expected 90%%, got %d%%", alert.Percentage)
		}
		if alert.Spent != "90.00" || alert.Limit != "100.00" {
			t.Errorf("expected spent 90.00 of 100.00, got %s of %s", alert.Spent, alert.Limit)
		}

		// Monthly budget: spending is summed from the first of the month.
		wantSince := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !transactionRepo.sumSince.Equal(wantSince) {
			t.Errorf("expected sum since %v, got %v", wantSince, transactionRepo.sumSince)
		}
	})

	t.Run("spending below the threshold stays quiet", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, emails := newAlertFixture(79)
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, emails).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Food")

		if len(emails.queued) != 0 {
			t.Errorf("expected no queued alerts, got %d", len(emails.queued))
		}
	})

	t.Run("hitting the threshold exactly queues an alert", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, emails := newAlertFixture(80)
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, emails).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Food")

		if len(emails.queued) != 1 {
			t.Errorf("expected 1 queued alert, got %d", len(emails.queued))
		}
	})

	t.Run("a missing budget is not an error", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, emails := newAlertFixture(90)
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, emails).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Travel")

		if transactionRepo.sumCalled {
			t.Error("expected no spend sum without a budget")
		}
		if len(emails.queued) != 0 {
			t.Errorf("expected no queued alerts, got %d", len(emails.queued))
		}
	})

	t.Run("disabled budget notifications suppress the alert", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, emails := newAlertFixture(90)
		budgetRepo.budgets[0].Notifications.Enabled = false
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, emails).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Food")

		if len(emails.queued) != 0 {
			t.Errorf("expected no queued alerts, got %d", len(emails.queued))
		}
	})

	t.Run("user preference opt-out suppresses the alert", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, emails := newAlertFixture(90)
		userRepo.users["user-a"].Preferences.Notifications.BudgetAlerts = false
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, emails).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Food")

		if len(emails.queued) != 0 {
			t.Errorf("expected no queued alerts, got %d", len(emails.queued))
		}
	})

	t.Run("a zero-limit budget never divides", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, emails := newAlertFixture(90)
		budgetRepo.budgets[0].Amount = decimal.Zero
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, emails).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Food")

		if len(emails.queued) != 0 {
			t.Errorf("expected no queued alerts, got %d", len(emails.queued))
		}
	})

	t.Run("nil email service disables checks entirely", func(t *testing.T) {
		budgetRepo, transactionRepo, userRepo, _ := newAlertFixture(90)
		checker := NewAlertChecker(budgetRepo, transactionRepo, userRepo, nil).WithClock(clock)

		checker.CheckCategory(ctx, "user-a", "Food")

		if transactionRepo.sumCalled {
			t.Error("expected no spend sum with a nil email service")
		}
	})
}
