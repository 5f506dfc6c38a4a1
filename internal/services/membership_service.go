package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"tripify/internal/infra"
	"tripify/internal/models/db_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

// MembershipService answers "may user U act on resource R, and at what
// role" for the three trip families. Absence of a membership row is a
// first-class outcome surfaced as ErrNotTripMember, never a database error.
type MembershipService interface {
	RequireTripMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.TripMember, error)
	RequireTripAdmin(ctx context.Context, tripId, userId uuid.UUID) (*db_models.TripMember, error)
	JoinTripByCode(ctx context.Context, code string, userId uuid.UUID) (*db_models.Trip, error)

	RequireExpenseTripMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ExpenseTripMember, error)

	RequireItineraryMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ItineraryTripMember, error)
	RequireItineraryRole(ctx context.Context, tripId, userId uuid.UUID, required db_models.ItineraryRole) (*db_models.ItineraryTripMember, error)
	JoinItineraryTripByCode(ctx context.Context, code string, userId uuid.UUID) (*db_models.ItineraryTrip, error)
}

type membershipService struct {
	tripRepo        repositories.TripRepository
	expenseTripRepo repositories.ExpenseTripRepository
	itineraryRepo   repositories.ItineraryRepository
}

func NewMembershipService(
	tripRepo repositories.TripRepository,
	expenseTripRepo repositories.ExpenseTripRepository,
	itineraryRepo repositories.ItineraryRepository) MembershipService {
	return &membershipService{
		tripRepo:        tripRepo,
		expenseTripRepo: expenseTripRepo,
		itineraryRepo:   itineraryRepo,
	}
}

func (m *membershipService) RequireTripMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.TripMember, error) {
	member, err := m.tripRepo.FindMember(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrNotTripMember
	}
	return member, nil
}

func (m *membershipService) RequireTripAdmin(ctx context.Context, tripId, userId uuid.UUID) (*db_models.TripMember, error) {
	member, err := m.RequireTripMember(ctx, tripId, userId)
	if err != nil {
		return nil, err
	}
	// Flat role set: admin-only is an equality check, not an ordering.
	if !member.Role.IsAdmin() {
		return nil, utils.ErrInsufficientRole
	}
	return member, nil
}

func (m *membershipService) JoinTripByCode(ctx context.Context, code string, userId uuid.UUID) (*db_models.Trip, error) {
	normalized, err := utils.NormalizeJoinCode(code)
	if err != nil {
		return nil, utils.ErrInvalidJoinCode
	}

	trip, err := m.tripRepo.FindByJoinCode(ctx, normalized)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrInvalidJoinCode
	}

	existing, err := m.tripRepo.FindMember(ctx, trip.ID, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		// Already joined, nothing to do.
		return trip, nil
	}

	member := db_models.TripMember{
		TripID: trip.ID,
		UserID: userId,
		Role:   db_models.TripRoleMember,
	}
	if err := m.tripRepo.AddMember(ctx, &member); err != nil {
		// A concurrent join lost the race on the composite key; the user
		// is a member either way.
		if infra.IsUniqueViolation(err) {
			log.Printf("Concurrent join for trip %s user %s, treating as joined", trip.ID, userId)
			return trip, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (m *membershipService) RequireExpenseTripMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ExpenseTripMember, error) {
	member, err := m.expenseTripRepo.FindMember(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrNotTripMember
	}
	return member, nil
}

func (m *membershipService) RequireItineraryMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ItineraryTripMember, error) {
	member, err := m.itineraryRepo.FindMember(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrNotTripMember
	}
	return member, nil
}

func (m *membershipService) RequireItineraryRole(ctx context.Context, tripId, userId uuid.UUID, required db_models.ItineraryRole) (*db_models.ItineraryTripMember, error) {
	member, err := m.RequireItineraryMember(ctx, tripId, userId)
	if err != nil {
		return nil, err
	}
	if !member.Role.Satisfies(required) {
		return nil, utils.ErrInsufficientRole
	}
	return member, nil
}

func (m *membershipService) JoinItineraryTripByCode(ctx context.Context, code string, userId uuid.UUID) (*db_models.ItineraryTrip, error) {
	normalized, err := utils.NormalizeJoinCode(code)
	if err != nil {
		return nil, utils.ErrInvalidJoinCode
	}

	trip, err := m.itineraryRepo.FindTripByJoinCode(ctx, normalized)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrInvalidJoinCode
	}

	existing, err := m.itineraryRepo.FindMember(ctx, trip.ID, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return trip, nil
	}

	member := db_models.ItineraryTripMember{
		TripID: trip.ID,
		UserID: userId,
		Role:   db_models.ItineraryRoleEditor,
	}
	if err := m.itineraryRepo.AddMember(ctx, &member); err != nil {
		if infra.IsUniqueViolation(err) {
			log.Printf("Concurrent join for itinerary trip %s user %s, treating as joined", trip.ID, userId)
			return trip, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}
