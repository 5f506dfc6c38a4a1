package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"tripify/internal/infra"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/internal/models/response_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

// Attempts before giving up on finding a free join code. 36^6 codes make
// collisions rare; the constraint catches the ones that happen anyway.
const joinCodeMaxAttempts = 5

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListMyTrips(ctx context.Context, userId uuid.UUID) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripId, userId uuid.UUID) (*response_models.TripResponse, error)
	JoinTrip(ctx context.Context, userId uuid.UUID, request request_models.JoinTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId, userId uuid.UUID) error
}

type TripService struct {
	tripRepo   repositories.TripRepository
	mediaRepo  repositories.MediaRepository
	membership MembershipService
	storage    StorageService
}

func NewTripService(
	tripRepo repositories.TripRepository,
	mediaRepo repositories.MediaRepository,
	membership MembershipService,
	storage StorageService) TripServiceInterface {
	return &TripService{
		tripRepo:   tripRepo,
		mediaRepo:  mediaRepo,
		membership: membership,
		storage:    storage,
	}
}

func toTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	resp := &response_models.TripResponse{
		ID:            trip.ID.String(),
		Name:          trip.Name,
		Description:   trip.Description,
		CoverPhotoURL: trip.CoverPhotoURL,
		JoinCode:      trip.JoinCode,
		CreatedBy:     trip.CreatedBy.String(),
		CreatedAt:     trip.CreatedAt,
	}
	for _, m := range trip.Members {
		resp.Members = append(resp.Members, response_models.TripMemberResponse{
			UserID:   m.UserID.String(),
			Name:     m.User.Name,
			Email:    m.User.Email,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		})
	}
	return resp
}

func (t *TripService) CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {

	trip := &db_models.Trip{
		Name:          request.Name,
		Description:   request.Description,
		CoverPhotoURL: request.CoverPhotoURL,
		CreatedBy:     userId,
	}

	for attempt := 0; attempt < joinCodeMaxAttempts; attempt++ {
		trip.ID = uuid.Nil
		trip.JoinCode = utils.GenerateJoinCode()

		err := t.tripRepo.Create(ctx, trip)
		if err == nil {
			created, err := t.tripRepo.FindByID(ctx, trip.ID)
			if err != nil || created == nil {
				return nil, utils.ErrDatabaseError
			}
			return toTripResponse(created), nil
		}
		if infra.IsUniqueViolation(err) {
			log.Printf("Join code %s collided, regenerating", trip.JoinCode)
			continue
		}
		return nil, utils.ErrDatabaseError
	}

	return nil, utils.ErrJoinCodeExhausted
}

func (t *TripService) ListMyTrips(ctx context.Context, userId uuid.UUID) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByUserID(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, *toTripResponse(&trips[i]))
	}
	return responses, nil
}

func (t *TripService) GetTrip(ctx context.Context, tripId, userId uuid.UUID) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if _, err := t.membership.RequireTripMember(ctx, tripId, userId); err != nil {
		return nil, err
	}

	return toTripResponse(trip), nil
}

func (t *TripService) JoinTrip(ctx context.Context, userId uuid.UUID, request request_models.JoinTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.membership.JoinTripByCode(ctx, request.Code, userId)
	if err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripId, userId uuid.UUID) error {
	trip, err := t.tripRepo.FindByID(ctx, tripId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	// Deletion is reserved for the creator or an admin member.
	if trip.CreatedBy != userId {
		if _, err := t.membership.RequireTripAdmin(ctx, tripId, userId); err != nil {
			return err
		}
	}

	media, err := t.mediaRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := t.tripRepo.Delete(ctx, tripId); err != nil {
		return utils.ErrDatabaseError
	}

	// Cascades removed the rows; blobs are cleaned up best-effort.
	for _, m := range media {
		if err := t.storage.Delete(ctx, m.GCSPath); err != nil {
			log.Printf("Error deleting blob %s: %v", m.GCSPath, err)
		}
	}

	return nil
}
