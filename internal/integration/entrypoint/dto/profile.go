package dto

import (
	"time"

	"github.com/fintrack/backend/internal/domain/entity"
)

// CreateProfileRequest represents the request to register a profile.
type CreateProfileRequest struct {
	DisplayName string `json:"displayName"`
}

// NotificationsPayload represents optional notification preference updates.
type NotificationsPayload struct {
	Email        *bool `json:"email"`
	Push         *bool `json:"push"`
	BudgetAlerts *bool `json:"budgetAlerts"`
	WeeklyReport *bool `json:"weeklyReport"`
}

// CategoryListsPayload represents category names to merge into the profile.
type CategoryListsPayload struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// PreferencesPayload represents optional preference updates.
type PreferencesPayload struct {
	Currency      *string               `json:"currency"`
	Theme         *string               `json:"theme"`
	Notifications *NotificationsPayload `json:"notifications"`
	Categories    *CategoryListsPayload `json:"categories"`
}

// UpdateProfileRequest represents a partial profile update. Absent fields are
// left unchanged; category lists are merged, not replaced.
type UpdateProfileRequest struct {
	DisplayName *string             `json:"displayName"`
	Preferences *PreferencesPayload `json:"preferences"`
}

// NotificationsResponse represents notification preferences in responses.
type NotificationsResponse struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	BudgetAlerts bool `json:"budgetAlerts"`
	WeeklyReport bool `json:"weeklyReport"`
}

// CategoryListsResponse represents the per-type category name lists.
type CategoryListsResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// PreferencesResponse represents user preferences in responses.
type PreferencesResponse struct {
	Currency      string                `json:"currency"`
	Theme         string                `json:"theme"`
	Notifications NotificationsResponse `json:"notifications"`
	Categories    CategoryListsResponse `json:"categories"`
}

// ProfileResponse represents the user profile in API responses.
type ProfileResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	DisplayName string              `json:"displayName"`
	Preferences PreferencesResponse `json:"preferences"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ProfileFromEntity converts a User entity to its response DTO.
func ProfileFromEntity(u *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Preferences: PreferencesResponse{
			Currency: string(u.Preferences.Currency),
			Theme:    string(u.Preferences.Theme),
			Notifications: NotificationsResponse{
				Email:        u.Preferences.Notifications.Email,
				Push:         u.Preferences.Notifications.Push,
				BudgetAlerts: u.Preferences.Notifications.BudgetAlerts,
				WeeklyReport: u.Preferences.Notifications.WeeklyReport,
			},
			Categories: CategoryListsFromEntity(u.Preferences.Categories),
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CategoryListsFromEntity converts the category lists value.
func CategoryListsFromEntity(lists entity.CategoryLists) CategoryListsResponse {
	income := lists.Income
	if income == nil {
		income = []string{}
	}
	expense := lists.Expense
	if expense == nil {
		expense = []string{}
	}
	return CategoryListsResponse{
		Income:  income,
		Expense: expense,
	}
}
