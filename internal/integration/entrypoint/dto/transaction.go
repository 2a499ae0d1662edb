package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request to create a transaction.
type CreateTransactionRequest struct {
	Type               string          `json:"type" binding:"required"`
	Category           string          `json:"category" binding:"required"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Date               *time.Time      `json:"date"`
	Tags               []string        `json:"tags"`
	Recurring          bool            `json:"recurring"`
	RecurringFrequency string          `json:"recurringFrequency"`
}

// UpdateTransactionRequest represents a partial transaction update. Absent
// fields are left unchanged.
type UpdateTransactionRequest struct {
	Type               *string          `json:"type"`
	Category           *string          `json:"category"`
	Amount             *decimal.Decimal `json:"amount"`
	Description        *string          `json:"description"`
	Date               *time.Time       `json:"date"`
	Tags               []string         `json:"tags"`
	Recurring          *bool            `json:"recurring"`
	RecurringFrequency *string          `json:"recurringFrequency"`
}

// SuggestCategoryRequest represents the request to suggest a category.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required"`
}

// SuggestCategoryResponse represents the suggested category.
type SuggestCategoryResponse struct {
	Category string `json:"category"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Category           string          `json:"category"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Date               time.Time       `json:"date"`
	Tags               []string        `json:"tags"`
	Recurring          bool            `json:"recurring"`
	RecurringFrequency string          `json:"recurringFrequency,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// TypeStatResponse represents an aggregated stats row for one transaction type.
type TypeStatResponse struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// TransactionFromEntity converts a Transaction entity to its response DTO.
func TransactionFromEntity(t *entity.Transaction) TransactionResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TransactionResponse{
		ID:                 t.ID.String(),
		Type:               string(t.Type),
		Category:           t.Category,
		Amount:             t.Amount,
		Description:        t.Description,
		Date:               t.Date,
		Tags:               tags,
		Recurring:          t.Recurring,
		RecurringFrequency: string(t.RecurringFrequency),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// TransactionsFromEntities converts a slice of Transaction entities.
func TransactionsFromEntities(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = TransactionFromEntity(t)
	}
	return responses
}

// TypeStatsFromEntities converts aggregated stats rows.
func TypeStatsFromEntities(stats []entity.TypeStat) []TypeStatResponse {
	responses := make([]TypeStatResponse, len(stats))
	for i, s := range stats {
		responses[i] = TypeStatResponse{
			Type:  string(s.Type),
			Total: s.Total,
			Count: s.Count,
		}
	}
	return responses
}
