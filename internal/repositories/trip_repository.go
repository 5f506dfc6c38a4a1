package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
)

type TripRepository interface {
	// Create inserts the trip and its creator's admin membership in one
	// transaction. A duplicate join code fails the whole transaction.
	Create(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, tripId uuid.UUID) (*db_models.Trip, error)
	FindByJoinCode(ctx context.Context, code string) (*db_models.Trip, error)
	ListByUserID(ctx context.Context, userId uuid.UUID) ([]db_models.Trip, error)
	FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.TripMember, error)
	AddMember(ctx context.Context, member *db_models.TripMember) error
	UpdateCoverPhoto(ctx context.Context, tripId uuid.UUID, url string) error
	Delete(ctx context.Context, tripId uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		member := db_models.TripMember{
			TripID: trip.ID,
			UserID: trip.CreatedBy,
			Role:   db_models.TripRoleAdmin,
		}
		return tx.Create(&member).Error
	})
}

func (r *tripRepository) FindByID(ctx context.Context, tripId uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
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

func (r *tripRepository) FindByJoinCode(ctx context.Context, code string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).Where("join_code = ?", code).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByUserID(ctx context.Context, userId uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id").
		Where("trip_members.user_id = ?", userId).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.TripMember, error) {
	var member db_models.TripMember
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

func (r *tripRepository) AddMember(ctx context.Context, member *db_models.TripMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *tripRepository) UpdateCoverPhoto(ctx context.Context, tripId uuid.UUID, url string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", tripId).
		Update("cover_photo_url", url).Error
}

func (r *tripRepository) Delete(ctx context.Context, tripId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", tripId).Delete(&db_models.Trip{}).Error
}
