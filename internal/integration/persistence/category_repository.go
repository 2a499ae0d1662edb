package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryModelFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch inserts multiple categories in one statement.
func (r *categoryRepository) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	categoryModels := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		categoryModels[i] = model.CategoryModelFromEntity(c)
	}
	result := r.db.WithContext(ctx).Create(&categoryModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves all categories for an owner, sorted by name.
func (r *categoryRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByOwnerAndName retrieves a category by owner and name.
func (r *categoryRepository) FindByOwnerAndName(ctx context.Context, ownerID, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// DeleteByOwner removes all categories belonging to an owner.
func (r *categoryRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.CategoryModel{})
	return result.Error
}
