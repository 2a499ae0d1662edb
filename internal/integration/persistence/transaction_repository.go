// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionModelFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction owned by the given owner.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID string) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", filter.OwnerID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Update saves changes to an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionModelFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction owned by the given owner.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// DeleteByOwner removes all transactions belonging to an owner.
func (r *transactionRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.TransactionModel{})
	return result.Error
}

// GetTypeStats aggregates totals and counts per transaction type since the given time.
func (r *transactionRepository) GetTypeStats(ctx context.Context, ownerID string, since time.Time) ([]entity.TypeStat, error) {
	var stats []entity.TypeStat
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("owner_id = ? AND date >= ?", ownerID, since).
		Group("type").
		Order("type ASC").
		Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	if stats == nil {
		stats = []entity.TypeStat{}
	}
	return stats, nil
}

// SumCategoryExpenses sums expense amounts for a category since the given time.
func (r *transactionRepository) SumCategoryExpenses(ctx context.Context, ownerID, category string, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner_id = ? AND type = ? AND category = ? AND date >= ?",
			ownerID, entity.TransactionTypeExpense, category, since).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
