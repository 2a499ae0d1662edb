package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// BudgetNotificationsPayload represents the notification settings of a budget.
type BudgetNotificationsPayload struct {
	Enabled   *bool `json:"enabled"`
	Threshold *int  `json:"threshold"`
}

// CreateBudgetRequest represents the request to create a budget.
type CreateBudgetRequest struct {
	Category      string                      `json:"category" binding:"required"`
	Amount        decimal.Decimal             `json:"amount"`
	Period        string                      `json:"period"`
	StartDate     *time.Time                  `json:"startDate"`
	Notifications *BudgetNotificationsPayload `json:"notifications"`
}

// UpdateBudgetRequest represents a partial budget update. Absent fields are
// left unchanged.
type UpdateBudgetRequest struct {
	Category      *string                     `json:"category"`
	Amount        *decimal.Decimal            `json:"amount"`
	Period        *string                     `json:"period"`
	StartDate     *time.Time                  `json:"startDate"`
	Notifications *BudgetNotificationsPayload `json:"notifications"`
}

// BudgetNotificationsResponse represents notification settings in responses.
type BudgetNotificationsResponse struct {
	Enabled   bool `json:"enabled"`
	Threshold int  `json:"threshold"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID            string                      `json:"id"`
	Category      string                      `json:"category"`
	Amount        decimal.Decimal             `json:"amount"`
	Period        string                      `json:"period"`
	StartDate     time.Time                   `json:"startDate"`
	Notifications BudgetNotificationsResponse `json:"notifications"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// BudgetOverviewResponse represents the aggregated budget overview.
type BudgetOverviewResponse struct {
	TotalBudget        decimal.Decimal `json:"totalBudget"`
	ActiveBudgets      int             `json:"activeBudgets"`
	CategoryCounts     map[string]int  `json:"categoryCounts"`
	PeriodDistribution map[string]int  `json:"periodDistribution"`
}

// BudgetFromEntity converts a Budget entity to its response DTO.
func BudgetFromEntity(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Category:  b.Category,
		Amount:    b.Amount,
		Period:    string(b.Period),
		StartDate: b.StartDate,
		Notifications: BudgetNotificationsResponse{
			Enabled:   b.Notifications.Enabled,
			Threshold: b.Notifications.Threshold,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BudgetsFromEntities converts a slice of Budget entities.
func BudgetsFromEntities(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = BudgetFromEntity(b)
	}
	return responses
}

// BudgetOverviewFromEntity converts a BudgetOverview to its response DTO.
func BudgetOverviewFromEntity(o *entity.BudgetOverview) BudgetOverviewResponse {
	periods := make(map[string]int, len(o.PeriodDistribution))
	for period, count := range o.PeriodDistribution {
		periods[string(period)] = count
	}
	return BudgetOverviewResponse{
		TotalBudget:        o.TotalBudget,
		ActiveBudgets:      o.ActiveBudgets,
		CategoryCounts:     o.CategoryCounts,
		PeriodDistribution: periods,
	}
}
