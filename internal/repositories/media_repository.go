package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
)

type MediaRepository interface {
	Create(ctx context.Context, media *db_models.Media) error
	FindByID(ctx context.Context, mediaId uuid.UUID) (*db_models.Media, error)
	ListByTripPaged(ctx context.Context, tripId uuid.UUID, offset, limit int) ([]db_models.Media, int64, error)
	ListByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.Media, error)
	ListPersonal(ctx context.Context, userId uuid.UUID) ([]db_models.Media, error)
	ListFavorites(ctx context.Context, userId uuid.UUID) ([]db_models.Media, error)
	Update(ctx context.Context, media *db_models.Media) error
	Delete(ctx context.Context, mediaId uuid.UUID) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *db_models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) FindByID(ctx context.Context, mediaId uuid.UUID) (*db_models.Media, error) {
	var media db_models.Media
	err := r.db.WithContext(ctx).Where("id = ?", mediaId).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) ListByTripPaged(ctx context.Context, tripId uuid.UUID, offset, limit int) ([]db_models.Media, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Media{}).
		Where("trip_id = ?", tripId).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var items []db_models.Media
	err = r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *mediaRepository) ListByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.Media, error) {
	var items []db_models.Media
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mediaRepository) ListPersonal(ctx context.Context, userId uuid.UUID) ([]db_models.Media, error) {
	var items []db_models.Media
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND trip_id IS NULL", userId).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mediaRepository) ListFavorites(ctx context.Context, userId uuid.UUID) ([]db_models.Media, error) {
	var items []db_models.Media
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_favorite = ?", userId, true).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mediaRepository) Update(ctx context.Context, media *db_models.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

func (r *mediaRepository) Delete(ctx context.Context, mediaId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", mediaId).Delete(&db_models.Media{}).Error
}
