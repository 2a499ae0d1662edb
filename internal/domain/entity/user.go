// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Currency represents the user's preferred display currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyINR Currency = "INR"
)

// Theme represents the user's preferred UI theme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// NotificationPrefs holds the user's notification toggles.
type NotificationPrefs struct {
	Email        bool
	Push         bool
	BudgetAlerts bool
	WeeklyReport bool
}

// CategoryLists holds the user's ordered category name lists, one per
// transaction type. Order is user-facing and preserved across updates.
type CategoryLists struct {
	Income  []string
	Expense []string
}

// Preferences holds all user-tunable settings.
type Preferences struct {
	Currency      Currency
	Theme         Theme
	Notifications NotificationPrefs
	Categories    CategoryLists
}

// User represents a local user record materialized from the identity provider.
// ProviderUID is the provider-issued id and the owner key for every resource;
// the provider remains the source of truth for identity itself.
type User struct {
	ID          uuid.UUID
	ProviderUID string
	Email       string
	DisplayName string
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultCategoryLists returns the category names seeded for new users.
func DefaultCategoryLists() CategoryLists {
	return CategoryLists{
		Income: []string{"Salary", "Freelance", "Investments", "Other"},
		Expense: []string{
			"Food & Dining",
			"Shopping",
			"Transportation",
			"Bills & Utilities",
			"Entertainment",
			"Health & Fitness",
			"Travel",
			"Education",
			"Other",
		},
	}
}

// NewUser creates a new User with default preferences and seeded categories.
func NewUser(providerUID, email, displayName string) *User {
	now := time.Now().UTC()
	return &User{
		ID:          uuid.New(),
		ProviderUID: providerUID,
		Email:       email,
		DisplayName: displayName,
		Preferences: Preferences{
			Currency: CurrencyUSD,
			Theme:    ThemeLight,
			Notifications: NotificationPrefs{
				Email:        true,
				Push:         true,
				BudgetAlerts: true,
				WeeklyReport: true,
			},
			Categories: DefaultCategoryLists(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidCurrency reports whether c is one of the supported currencies.
func IsValidCurrency(c Currency) bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY, CurrencyINR:
		return true
	}
	return false
}

// IsValidTheme reports whether t is one of the supported themes.
func IsValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}
