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

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserModelFromEntity(user)
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByProviderUID retrieves a user by the identity provider subject.
func (r *userRepository) FindByProviderUID(ctx context.Context, providerUID string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).
		Where("provider_uid = ?", providerUID).
		First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// Update saves changes to an existing user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := model.UserModelFromEntity(user)
	result := r.db.WithContext(ctx).Save(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a user by the identity provider subject.
func (r *userRepository) Delete(ctx context.Context, providerUID string) error {
	result := r.db.WithContext(ctx).
		Where("provider_uid = ?", providerUID).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrUserNotFound
	}
	return nil
}
