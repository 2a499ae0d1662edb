package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderUID              string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Email                    string    `gorm:"type:varchar(255);not null"`
	DisplayName              string    `gorm:"type:varchar(255)"`
	Currency                 string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Theme                    string    `gorm:"type:varchar(10);not null;default:'system'"`
	NotifyEmail              bool      `gorm:"not null;default:true"`
	NotifyPush               bool      `gorm:"not null;default:true"`
	NotifyBudgetAlerts       bool      `gorm:"not null;default:true"`
	NotifyWeeklyReport       bool      `gorm:"not null;default:true"`
	IncomeCategories         string    `gorm:"type:jsonb;not null;default:'[]'"`
	ExpenseCategories        string    `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt                time.Time `gorm:"not null"`
	UpdatedAt                time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:          m.ID,
		ProviderUID: m.ProviderUID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Preferences: entity.Preferences{
			Currency: entity.Currency(m.Currency),
			Theme:    entity.Theme(m.Theme),
			Notifications: entity.NotificationPrefs{
				Email:        m.NotifyEmail,
				Push:         m.NotifyPush,
				BudgetAlerts: m.NotifyBudgetAlerts,
				WeeklyReport: m.NotifyWeeklyReport,
			},
			Categories: entity.CategoryLists{
				Income:  unmarshalNames(m.IncomeCategories, m.ID, "income"),
				Expense: unmarshalNames(m.ExpenseCategories, m.ID, "expense"),
			},
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserModelFromEntity creates a UserModel from a domain User entity.
func UserModelFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                 user.ID,
		ProviderUID:        user.ProviderUID,
		Email:              user.Email,
		DisplayName:        user.DisplayName,
		Currency:           string(user.Preferences.Currency),
		Theme:              string(user.Preferences.Theme),
		NotifyEmail:        user.Preferences.Notifications.Email,
		NotifyPush:         user.Preferences.Notifications.Push,
		NotifyBudgetAlerts: user.Preferences.Notifications.BudgetAlerts,
		NotifyWeeklyReport: user.Preferences.Notifications.WeeklyReport,
		IncomeCategories:   marshalNames(user.Preferences.Categories.Income, user.ID),
		ExpenseCategories:  marshalNames(user.Preferences.Categories.Expense, user.ID),
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

func unmarshalNames(raw string, id uuid.UUID, list string) []string {
	var names []string
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			slog.Warn("Failed to unmarshal category list", "error", err, "user_id", id, "list", list)
		}
	}
	if names == nil {
		names = []string{}
	}
	return names
}

func marshalNames(names []string, id uuid.UUID) string {
	if names == nil {
		names = []string{}
	}
	raw, err := json.Marshal(names)
	if err != nil {
		slog.Error("Failed to marshal category list", "error", err, "user_id", id)
		return "[]"
	}
	return string(raw)
}
