// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents which transaction types a category applies to.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeBoth    CategoryType = "both"
)

// DefaultCategoryIcon is the icon used when none is provided.
const DefaultCategoryIcon = "tag"

// Category represents a user-defined transaction label.
type Category struct {
	ID        uuid.UUID
	OwnerID   string
	Name      string
	Type      CategoryType
	Icon      string
	IsDefault bool // Seeded on user creation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(ownerID, name string, categoryType CategoryType, icon string, isDefault bool) *Category {
	now := time.Now().UTC()

	if icon == "" {
		icon = DefaultCategoryIcon
	}

	return &Category{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidCategoryType reports whether t is a known category type.
func IsValidCategoryType(t CategoryType) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense || t == CategoryTypeBoth
}
