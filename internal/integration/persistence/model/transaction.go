// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID            string          `gorm:"type:varchar(128);not null;index"`
	Type               string          `gorm:"type:varchar(10);not null"`
	Category           string          `gorm:"type:varchar(100);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description        string          `gorm:"type:varchar(255)"`
	Date               time.Time       `gorm:"not null;index"`
	Tags               string          `gorm:"type:jsonb;not null;default:'[]'"`
	Recurring          bool            `gorm:"not null;default:false"`
	RecurringFrequency string          `gorm:"type:varchar(10)"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var tags []string
	if m.Tags != "" {
		if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
			slog.Warn("Failed to unmarshal transaction tags", "error", err, "id", m.ID)
		}
	}
	if tags == nil {
		tags = []string{}
	}

	return &entity.Transaction{
		ID:                 m.ID,
		OwnerID:            m.OwnerID,
		Type:               entity.TransactionType(m.Type),
		Category:           m.Category,
		Amount:             m.Amount,
		Description:        m.Description,
		Date:               m.Date,
		Tags:               tags,
		Recurring:          m.Recurring,
		RecurringFrequency: entity.RecurringFrequency(m.RecurringFrequency),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// TransactionModelFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionModelFromEntity(transaction *entity.Transaction) *TransactionModel {
	tagsJSON, err := json.Marshal(transaction.Tags)
	if err != nil {
		slog.Error("Failed to marshal transaction tags", "error", err, "transaction_id", transaction.ID)
		tagsJSON = []byte("[]")
	}

	return &TransactionModel{
		ID:                 transaction.ID,
		OwnerID:            transaction.OwnerID,
		Type:               string(transaction.Type),
		Category:           transaction.Category,
		Amount:             transaction.Amount,
		Description:        transaction.Description,
		Date:               transaction.Date,
		Tags:               string(tagsJSON),
		Recurring:          transaction.Recurring,
		RecurringFrequency: string(transaction.RecurringFrequency),
		CreatedAt:          transaction.CreatedAt,
		UpdatedAt:          transaction.UpdatedAt,
	}
}
