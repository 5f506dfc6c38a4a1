package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *db_models.Expense) error
	FindByID(ctx context.Context, expenseId uuid.UUID) (*db_models.Expense, error)
	ListByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.Expense, error)
	Update(ctx context.Context, expense *db_models.Expense) error
	Delete(ctx context.Context, expenseId uuid.UUID) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, expenseId uuid.UUID) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).Where("id = ?", expenseId).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) ListByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, expenseId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", expenseId).Delete(&db_models.Expense{}).Error
}
