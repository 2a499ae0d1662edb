package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID               string          `gorm:"type:varchar(128);not null;index"`
	Category              string          `gorm:"type:varchar(100);not null"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period                string          `gorm:"type:varchar(10);not null;default:'monthly'"`
	StartDate             time.Time       `gorm:"not null"`
	NotificationsEnabled  bool            `gorm:"not null;default:true"`
	NotificationThreshold int             `gorm:"not null;default:80"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Category:  m.Category,
		Amount:    m.Amount,
		Period:    entity.BudgetPeriod(m.Period),
		StartDate: m.StartDate,
		Notifications: entity.BudgetNotifications{
			Enabled:   m.NotificationsEnabled,
			Threshold: m.NotificationThreshold,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetModelFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetModelFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:                    budget.ID,
		OwnerID:               budget.OwnerID,
		Category:              budget.Category,
		Amount:                budget.Amount,
		Period:                string(budget.Period),
		StartDate:             budget.StartDate,
		NotificationsEnabled:  budget.Notifications.Enabled,
		NotificationThreshold: budget.Notifications.Threshold,
		CreatedAt:             budget.CreatedAt,
		UpdatedAt:             budget.UpdatedAt,
	}
}
