package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
	"tripify/pkg/utils"
)

func newMembershipFixture() (*fakeTripRepo, *fakeExpenseTripRepo, *fakeItineraryRepo, MembershipService) {
	tripRepo := newFakeTripRepo()
	expenseTripRepo := newFakeExpenseTripRepo()
	itineraryRepo := newFakeItineraryRepo()
	svc := NewMembershipService(tripRepo, expenseTripRepo, itineraryRepo)
	return tripRepo, expenseTripRepo, itineraryRepo, svc
}

func TestRequireTripMember(t *testing.T) {
	tripRepo, _, _, svc := newMembershipFixture()
	ctx := context.Background()

	tripId := uuid.New()
	member := uuid.New()
	stranger := uuid.New()
	tripRepo.members[memberKey(tripId, member)] = &db_models.TripMember{
		TripID: tripId, UserID: member, Role: db_models.TripRoleMember,
	}

	if _, err := svc.RequireTripMember(ctx, tripId, member); err != nil {
		t.Fatalf("member should pass: %v", err)
	}
	if _, err := svc.RequireTripMember(ctx, tripId, stranger); !errors.Is(err, utils.ErrNotTripMember) {
		t.Fatalf("expected ErrNotTripMember, got %v", err)
	}
}

func TestRequireTripAdmin(t *testing.T) {
	tripRepo, _, _, svc := newMembershipFixture()
	ctx := context.Background()

	tripId := uuid.New()
	admin := uuid.New()
	member := uuid.New()
	tripRepo.members[memberKey(tripId, admin)] = &db_models.TripMember{
		TripID: tripId, UserID: admin, Role: db_models.TripRoleAdmin,
	}
	tripRepo.members[memberKey(tripId, member)] = &db_models.TripMember{
		TripID: tripId, UserID: member, Role: db_models.TripRoleMember,
	}

	if _, err := svc.RequireTripAdmin(ctx, tripId, admin); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
	if _, err := svc.RequireTripAdmin(ctx, tripId, member); !errors.Is(err, utils.ErrInsufficientRole) {
		t.Fatalf("expected ErrInsufficientRole for plain member, got %v", err)
	}
	if _, err := svc.RequireTripAdmin(ctx, tripId, uuid.New()); !errors.Is(err, utils.ErrNotTripMember) {
		t.Fatalf("expected ErrNotTripMember for stranger, got %v", err)
	}
}

func TestJoinTripByCode(t *testing.T) {
	tripRepo, _, _, svc := newMembershipFixture()
	ctx := context.Background()

	tripId := uuid.New()
	tripRepo.trips[tripId] = &db_models.Trip{
		BaseModel: db_models.BaseModel{ID: tripId},
		Name:      "Summer",
		JoinCode:  "ABC123",
	}

	userId := uuid.New()

	t.Run("normalizes and joins", func(t *testing.T) {
		trip, err := svc.JoinTripByCode(ctx, " abc123 ", userId)
		if err != nil {
			t.Fatalf("join failed: %v", err)
		}
		if trip.ID != tripId {
			t.Fatalf("wrong trip: %s", trip.ID)
		}
		member := tripRepo.members[memberKey(tripId, userId)]
		if member == nil {
			t.Fatal("membership row not created")
		}
		if member.Role != db_models.TripRoleMember {
			t.Fatalf("new member role = %s, want member", member.Role)
		}
	})

	t.Run("join is idempotent", func(t *testing.T) {
		before := tripRepo.addMemberN
		if _, err := svc.JoinTripByCode(ctx, "ABC123", userId); err != nil {
			t.Fatalf("re-join failed: %v", err)
		}
		if tripRepo.addMemberN != before {
			t.Fatal("re-join should not insert another membership row")
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := svc.JoinTripByCode(ctx, "ZZZZZZ", userId); !errors.Is(err, utils.ErrInvalidJoinCode) {
			t.Fatalf("expected ErrInvalidJoinCode, got %v", err)
		}
	})

	t.Run("malformed code", func(t *testing.T) {
		for _, code := range []string{"", "AB", "ABC12!"} {
			if _, err := svc.JoinTripByCode(ctx, code, userId); !errors.Is(err, utils.ErrInvalidJoinCode) {
				t.Fatalf("expected ErrInvalidJoinCode for %q, got %v", code, err)
			}
		}
	})

	t.Run("lost insert race still counts as joined", func(t *testing.T) {
		racer := uuid.New()
		tripRepo.addMemberErr = gorm.ErrDuplicatedKey
		defer func() { tripRepo.addMemberErr = nil }()

		trip, err := svc.JoinTripByCode(ctx, "ABC123", racer)
		if err != nil {
			t.Fatalf("concurrent join should succeed: %v", err)
		}
		if trip.ID != tripId {
			t.Fatalf("wrong trip: %s", trip.ID)
		}
	})
}

func TestRequireItineraryRole(t *testing.T) {
	_, _, itineraryRepo, svc := newMembershipFixture()
	ctx := context.Background()

	tripId := uuid.New()
	owner := uuid.New()
	editor := uuid.New()
	viewer := uuid.New()
	itineraryRepo.members[memberKey(tripId, owner)] = &db_models.ItineraryTripMember{
		TripID: tripId, UserID: owner, Role: db_models.ItineraryRoleOwner,
	}
	itineraryRepo.members[memberKey(tripId, editor)] = &db_models.ItineraryTripMember{
		TripID: tripId, UserID: editor, Role: db_models.ItineraryRoleEditor,
	}
	itineraryRepo.members[memberKey(tripId, viewer)] = &db_models.ItineraryTripMember{
		TripID: tripId, UserID: viewer, Role: db_models.ItineraryRoleViewer,
	}

	tests := []struct {
		name     string
		userId   uuid.UUID
		required db_models.ItineraryRole
		wantErr  error
	}{
		{name: "owner passes editor check", userId: owner, required: db_models.ItineraryRoleEditor},
		{name: "owner passes viewer check", userId: viewer, required: db_models.ItineraryRoleViewer},
		{name: "editor passes editor check", userId: editor, required: db_models.ItineraryRoleEditor},
		{name: "editor fails owner check", userId: editor, required: db_models.ItineraryRoleOwner, wantErr: utils.ErrInsufficientRole},
		{name: "viewer fails editor check", userId: viewer, required: db_models.ItineraryRoleEditor, wantErr: utils.ErrInsufficientRole},
		{name: "stranger fails", userId: uuid.New(), required: db_models.ItineraryRoleViewer, wantErr: utils.ErrNotTripMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RequireItineraryRole(ctx, tripId, tt.userId, tt.required)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestJoinItineraryTripByCode(t *testing.T) {
	_, _, itineraryRepo, svc := newMembershipFixture()
	ctx := context.Background()

	tripId := uuid.New()
	itineraryRepo.trips[tripId] = &db_models.ItineraryTrip{
		BaseModel: db_models.BaseModel{ID: tripId},
		Name:      "Japan",
		JoinCode:  "XYZ789",
	}

	userId := uuid.New()
	trip, err := svc.JoinItineraryTripByCode(ctx, "xyz789", userId)
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if trip.ID != tripId {
		t.Fatalf("wrong trip: %s", trip.ID)
	}

	member := itineraryRepo.members[memberKey(tripId, userId)]
	if member == nil {
		t.Fatal("membership row not created")
	}
	if member.Role != db_models.ItineraryRoleEditor {
		t.Fatalf("joined role = %s, want editor", member.Role)
	}
}
