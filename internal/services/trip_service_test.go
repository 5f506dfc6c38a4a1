package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/pkg/utils"
)

func newTripFixture() (*fakeTripRepo, *fakeMediaRepo, *fakeStorage, TripServiceInterface) {
	tripRepo := newFakeTripRepo()
	mediaRepo := newFakeMediaRepo()
	storage := &fakeStorage{}
	membership := NewMembershipService(tripRepo, newFakeExpenseTripRepo(), newFakeItineraryRepo())
	svc := NewTripService(tripRepo, mediaRepo, membership, storage)
	return tripRepo, mediaRepo, storage, svc
}

func TestCreateTrip(t *testing.T) {
	tripRepo, _, _, svc := newTripFixture()
	ctx := context.Background()
	userId := uuid.New()

	trip, err := svc.CreateTrip(ctx, userId, request_models.CreateTripRequest{Name: "Summer 2026"})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if len(trip.JoinCode) != utils.JoinCodeLength {
		t.Fatalf("join code %q has wrong length", trip.JoinCode)
	}

	tripId, err := uuid.Parse(trip.ID)
	if err != nil {
		t.Fatalf("bad trip id %q: %v", trip.ID, err)
	}
	member := tripRepo.members[memberKey(tripId, userId)]
	if member == nil {
		t.Fatal("creator has no membership row")
	}
	if !member.Role.IsAdmin() {
		t.Fatalf("creator role = %s, want admin", member.Role)
	}
}

func TestCreateTripRetriesOnJoinCodeCollision(t *testing.T) {
	tripRepo, _, _, svc := newTripFixture()
	ctx := context.Background()

	tripRepo.createErrs = []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey, nil}

	trip, err := svc.CreateTrip(ctx, uuid.New(), request_models.CreateTripRequest{Name: "Retry"})
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if trip.Name != "Retry" {
		t.Fatalf("unexpected trip %+v", trip)
	}
}

func TestCreateTripGivesUpAfterRepeatedCollisions(t *testing.T) {
	tripRepo, _, _, svc := newTripFixture()
	ctx := context.Background()

	for i := 0; i < joinCodeMaxAttempts; i++ {
		tripRepo.createErrs = append(tripRepo.createErrs, gorm.ErrDuplicatedKey)
	}

	_, err := svc.CreateTrip(ctx, uuid.New(), request_models.CreateTripRequest{Name: "Doomed"})
	if !errors.Is(err, utils.ErrJoinCodeExhausted) {
		t.Fatalf("expected ErrJoinCodeExhausted, got %v", err)
	}
}

func TestGetTripRequiresMembership(t *testing.T) {
	tripRepo, _, _, svc := newTripFixture()
	ctx := context.Background()

	tripId := uuid.New()
	tripRepo.trips[tripId] = &db_models.Trip{
		BaseModel: db_models.BaseModel{ID: tripId},
		Name:      "Private",
		JoinCode:  "AAAAAA",
	}

	if _, err := svc.GetTrip(ctx, tripId, uuid.New()); !errors.Is(err, utils.ErrNotTripMember) {
		t.Fatalf("expected ErrNotTripMember, got %v", err)
	}
	if _, err := svc.GetTrip(ctx, uuid.New(), uuid.New()); !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestDeleteTrip(t *testing.T) {
	tripRepo, mediaRepo, storage, svc := newTripFixture()
	ctx := context.Background()

	creator := uuid.New()
	member := uuid.New()

	created, err := svc.CreateTrip(ctx, creator, request_models.CreateTripRequest{Name: "Doomed"})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	tripId := uuid.MustParse(created.ID)
	tripRepo.members[memberKey(tripId, member)] = &db_models.TripMember{
		TripID: tripId, UserID: member, Role: db_models.TripRoleMember,
	}
	for i := 0; i < 3; i++ {
		mediaId := uuid.New()
		mediaRepo.media[mediaId] = &db_models.Media{
			BaseModel: db_models.BaseModel{ID: mediaId},
			UserID:    creator,
			TripID:    &tripId,
			GCSPath:   "users/user_x/trips/trip_y/photo_" + mediaId.String(),
		}
	}

	if err := svc.DeleteTrip(ctx, tripId, member); !errors.Is(err, utils.ErrInsufficientRole) {
		t.Fatalf("plain member should not delete, got %v", err)
	}

	if err := svc.DeleteTrip(ctx, tripId, creator); err != nil {
		t.Fatalf("creator delete failed: %v", err)
	}
	if _, ok := tripRepo.trips[tripId]; ok {
		t.Fatal("trip row still present after delete")
	}
	if len(storage.deletes) != 3 {
		t.Fatalf("expected every trip blob deleted, got %d of 3", len(storage.deletes))
	}
}
