package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
)

type ExpenseTripRepository interface {
	Create(ctx context.Context, trip *db_models.ExpenseTrip) error
	FindByID(ctx context.Context, tripId uuid.UUID) (*db_models.ExpenseTrip, error)
	ListByCreator(ctx context.Context, userId uuid.UUID) ([]db_models.ExpenseTrip, error)
	FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ExpenseTripMember, error)
	Delete(ctx context.Context, tripId uuid.UUID) error
}

type expenseTripRepository struct {
	db *gorm.DB
}

func NewExpenseTripRepository(db *gorm.DB) ExpenseTripRepository {
	return &expenseTripRepository{db: db}
}

func (r *expenseTripRepository) Create(ctx context.Context, trip *db_models.ExpenseTrip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		member := db_models.ExpenseTripMember{
			TripID: trip.ID,
			UserID: trip.CreatedBy,
			Role:   db_models.TripRoleAdmin,
		}
		return tx.Create(&member).Error
	})
}

func (r *expenseTripRepository) FindByID(ctx context.Context, tripId uuid.UUID) (*db_models.ExpenseTrip, error) {
	var trip db_models.ExpenseTrip
	err := r.db.WithContext(ctx).
		Preload("Members.User").
		Where("id = ?", tripId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *expenseTripRepository) ListByCreator(ctx context.Context, userId uuid.UUID) ([]db_models.ExpenseTrip, error) {
	var trips []db_models.ExpenseTrip
	err := r.db.WithContext(ctx).
		Preload("Members.User").
		Where("created_by = ?", userId).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *expenseTripRepository) FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ExpenseTripMember, error) {
	var member db_models.ExpenseTripMember
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripId, userId).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *expenseTripRepository) Delete(ctx context.Context, tripId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", tripId).Delete(&db_models.ExpenseTrip{}).Error
}
