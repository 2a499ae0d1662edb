// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurrence unit of a budget.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Default notification threshold, as a percentage of the budget limit.
const DefaultAlertThreshold = 80

// BudgetNotifications holds the alert settings for a budget.
// Threshold is a percentage in [1,100] of the limit at which an alert fires.
type BudgetNotifications struct {
	Enabled   bool
	Threshold int
}

// Budget represents a spending limit for one of the owner's categories.
// An owner may hold many budgets, keyed by (owner, category).
type Budget struct {
	ID            uuid.UUID
	OwnerID       string
	Category      string
	Amount        decimal.Decimal // Non-negative limit
	Period        BudgetPeriod
	StartDate     time.Time
	Notifications BudgetNotifications
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBudget creates a new Budget entity with server-assigned id and timestamps.
func NewBudget(
	ownerID string,
	category string,
	amount decimal.Decimal,
	period BudgetPeriod,
	startDate time.Time,
	notifications BudgetNotifications,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Category:      category,
		Amount:        amount,
		Period:        period,
		StartDate:     startDate,
		Notifications: notifications,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidBudgetPeriod reports whether p is a known budget period.
func IsValidBudgetPeriod(p BudgetPeriod) bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// IsValidAlertThreshold reports whether t is inside the accepted [1,100] range.
func IsValidAlertThreshold(t int) bool {
	return t >= 1 && t <= 100
}

// PeriodStart returns the beginning of the budget period that contains now:
// the first of the current month for monthly budgets, January 1st of the
// current year for yearly ones.
func (b *Budget) PeriodStart(now time.Time) time.Time {
	if b.Period == BudgetPeriodYearly {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// BudgetOverview aggregates an owner's budgets for the stats overview endpoint.
type BudgetOverview struct {
	TotalBudget        decimal.Decimal
	ActiveBudgets      int
	CategoryCounts     map[string]int
	PeriodDistribution map[BudgetPeriod]int
}
