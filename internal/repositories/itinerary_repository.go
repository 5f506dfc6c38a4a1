package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateTrip(ctx context.Context, trip *db_models.ItineraryTrip) error
	FindTripByID(ctx context.Context, tripId uuid.UUID) (*db_models.ItineraryTrip, error)
	FindTripByJoinCode(ctx context.Context, code string) (*db_models.ItineraryTrip, error)
	ListTripsByUserID(ctx context.Context, userId uuid.UUID) ([]db_models.ItineraryTrip, error)
	UpdateTrip(ctx context.Context, trip *db_models.ItineraryTrip) error
	DeleteTrip(ctx context.Context, tripId uuid.UUID) error

	FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ItineraryTripMember, error)
	AddMember(ctx context.Context, member *db_models.ItineraryTripMember) error

	CreateDay(ctx context.Context, day *db_models.ItineraryDay) error
	FindDayByID(ctx context.Context, dayId uuid.UUID) (*db_models.ItineraryDay, error)
	ListDaysByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.ItineraryDay, error)
	UpdateDay(ctx context.Context, day *db_models.ItineraryDay) error
	DeleteDay(ctx context.Context, dayId uuid.UUID) error

	CreateActivity(ctx context.Context, activity *db_models.ItineraryActivity) error
	FindActivityByID(ctx context.Context, activityId uuid.UUID) (*db_models.ItineraryActivity, error)
	ListActivitiesByDay(ctx context.Context, dayId uuid.UUID) ([]db_models.ItineraryActivity, error)
	UpdateActivity(ctx context.Context, activity *db_models.ItineraryActivity) error
	DeleteActivity(ctx context.Context, activityId uuid.UUID) error

	CreatePackingItem(ctx context.Context, item *db_models.ItineraryPackingItem) error
	FindPackingItemByID(ctx context.Context, itemId uuid.UUID) (*db_models.ItineraryPackingItem, error)
	ListPackingItemsByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.ItineraryPackingItem, error)
	UpdatePackingItem(ctx context.Context, item *db_models.ItineraryPackingItem) error
	DeletePackingItem(ctx context.Context, itemId uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateTrip(ctx context.Context, trip *db_models.ItineraryTrip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		member := db_models.ItineraryTripMember{
			TripID: trip.ID,
			UserID: trip.CreatedBy,
			Role:   db_models.ItineraryRoleOwner,
		}
		return tx.Create(&member).Error
	})
}

func (r *itineraryRepository) FindTripByID(ctx context.Context, tripId uuid.UUID) (*db_models.ItineraryTrip, error) {
	var trip db_models.ItineraryTrip
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

func (r *itineraryRepository) FindTripByJoinCode(ctx context.Context, code string) (*db_models.ItineraryTrip, error) {
	var trip db_models.ItineraryTrip
	err := r.db.WithContext(ctx).Where("join_code = ?", code).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *itineraryRepository) ListTripsByUserID(ctx context.Context, userId uuid.UUID) ([]db_models.ItineraryTrip, error) {
	var trips []db_models.ItineraryTrip
	err := r.db.WithContext(ctx).
		Joins("JOIN itinerary_trip_members ON itinerary_trip_members.trip_id = itinerary_trips.id").
		Where("itinerary_trip_members.user_id = ?", userId).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *itineraryRepository) UpdateTrip(ctx context.Context, trip *db_models.ItineraryTrip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *itineraryRepository) DeleteTrip(ctx context.Context, tripId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", tripId).Delete(&db_models.ItineraryTrip{}).Error
}

func (r *itineraryRepository) FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ItineraryTripMember, error) {
	var member db_models.ItineraryTripMember
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

func (r *itineraryRepository) AddMember(ctx context.Context, member *db_models.ItineraryTripMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *itineraryRepository) CreateDay(ctx context.Context, day *db_models.ItineraryDay) error {
	return r.db.WithContext(ctx).Create(day).Error
}

func (r *itineraryRepository) FindDayByID(ctx context.Context, dayId uuid.UUID) (*db_models.ItineraryDay, error) {
	var day db_models.ItineraryDay
	err := r.db.WithContext(ctx).Where("id = ?", dayId).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func (r *itineraryRepository) ListDaysByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.ItineraryDay, error) {
	var days []db_models.ItineraryDay
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("day_number").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index")
		}).
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *itineraryRepository) UpdateDay(ctx context.Context, day *db_models.ItineraryDay) error {
	return r.db.WithContext(ctx).Save(day).Error
}

func (r *itineraryRepository) DeleteDay(ctx context.Context, dayId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", dayId).Delete(&db_models.ItineraryDay{}).Error
}

func (r *itineraryRepository) CreateActivity(ctx context.Context, activity *db_models.ItineraryActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) FindActivityByID(ctx context.Context, activityId uuid.UUID) (*db_models.ItineraryActivity, error) {
	var activity db_models.ItineraryActivity
	err := r.db.WithContext(ctx).Where("id = ?", activityId).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *itineraryRepository) ListActivitiesByDay(ctx context.Context, dayId uuid.UUID) ([]db_models.ItineraryActivity, error) {
	var activities []db_models.ItineraryActivity
	err := r.db.WithContext(ctx).
		Where("day_id = ?", dayId).
		Order("order_index").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *itineraryRepository) UpdateActivity(ctx context.Context, activity *db_models.ItineraryActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *itineraryRepository) DeleteActivity(ctx context.Context, activityId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", activityId).Delete(&db_models.ItineraryActivity{}).Error
}

func (r *itineraryRepository) CreatePackingItem(ctx context.Context, item *db_models.ItineraryPackingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itineraryRepository) FindPackingItemByID(ctx context.Context, itemId uuid.UUID) (*db_models.ItineraryPackingItem, error) {
	var item db_models.ItineraryPackingItem
	err := r.db.WithContext(ctx).Where("id = ?", itemId).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itineraryRepository) ListPackingItemsByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.ItineraryPackingItem, error) {
	var items []db_models.ItineraryPackingItem
	err := r.db.WithContext(ctx).Where("trip_id = ?", tripId).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itineraryRepository) UpdatePackingItem(ctx context.Context, item *db_models.ItineraryPackingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itineraryRepository) DeletePackingItem(ctx context.Context, itemId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", itemId).Delete(&db_models.ItineraryPackingItem{}).Error
}
