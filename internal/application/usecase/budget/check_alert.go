// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// AlertChecker decides, after an expense write, whether the owner's spending
// in a category crossed the budget's alert threshold, and queues a
// notification email when it did. Everything here is best-effort: failures
// are logged and swallowed so they can never fail the triggering write.
type AlertChecker struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	emailService    adapter.EmailService
	now             func() time.Time
}

// NewAlertChecker creates a new AlertChecker instance. emailService may be nil,
// which disables alerts entirely.
func NewAlertChecker(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *AlertChecker {
	return &AlertChecker{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		emailService:    emailService,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test hook.
func (c *AlertChecker) WithClock(now func() time.Time) *AlertChecker {
	c.now = now
	return c
}

// CheckCategory implements transaction.BudgetAlertChecker.
func (c *AlertChecker) CheckCategory(ctx context.Context, ownerID, category string) {
	if c.emailService == nil {
		return
	}

	budget, err := c.budgetRepo.FindByOwnerAndCategory(ctx, ownerID, category)
	if err != nil {
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			slog.Debug("Budget alert check: lookup failed", "ownerID", ownerID, "category", category, "error", err)
		}
		return
	}

	if !budget.Notifications.Enabled || budget.Amount.IsZero() {
		return
	}

	user, err := c.userRepo.FindByProviderUID(ctx, ownerID)
	if err != nil {
		slog.Debug("Budget alert check: user lookup failed", "ownerID", ownerID, "error", err)
		return
	}
	if !user.Preferences.Notifications.BudgetAlerts {
		return
	}

	since := budget.PeriodStart(c.now())
	spent, err := c.transactionRepo.SumCategoryExpenses(ctx, ownerID, category, since)
	if err != nil {
		slog.Debug("Budget alert check: sum failed", "ownerID", ownerID, "category", category, "error", err)
		return
	}

	percentage := spent.Mul(decimal.NewFromInt(100)).Div(budget.Amount)
	threshold := decimal.NewFromInt(int64(budget.Notifications.Threshold))
	if percentage.LessThan(threshold) {
		return
	}

	pct := int(percentage.IntPart())
	input := adapter.QueueBudgetAlertInput{
		UserEmail:  user.Email,
		UserName:   user.DisplayName,
		Category:   category,
		Spent:      spent.StringFixed(2),
		Limit:      budget.Amount.StringFixed(2),
		Percentage: pct,
		Threshold:  budget.Notifications.Threshold,
		Period:     string(budget.Period),
	}

	if err := c.emailService.QueueBudgetAlertEmail(ctx, input); err != nil {
		slog.Warn("Failed to queue budget alert email",
			"ownerID", ownerID,
			"category", category,
			"error", err,
		)
		return
	}

	slog.Info("Budget alert queued",
		"ownerID", ownerID,
		"category", category,
		"percentage", pct,
	)
}
