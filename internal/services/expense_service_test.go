package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/pkg/utils"
)

func newExpenseFixture(t *testing.T) (uuid.UUID, uuid.UUID, *fakeExpenseTripRepo, ExpenseServiceInterface) {
	t.Helper()

	expenseTripRepo := newFakeExpenseTripRepo()
	expenseRepo := newFakeExpenseRepo()
	membership := NewMembershipService(newFakeTripRepo(), expenseTripRepo, newFakeItineraryRepo())
	svc := NewExpenseService(expenseRepo, membership)

	creator := uuid.New()
	trip := &db_models.ExpenseTrip{Name: "Weekend", CreatedBy: creator}
	if err := expenseTripRepo.Create(context.Background(), trip); err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return trip.ID, creator, expenseTripRepo, svc
}

func TestCreateExpense(t *testing.T) {
	tripId, creator, _, svc := newExpenseFixture(t)
	ctx := context.Background()

	expense, err := svc.CreateExpense(ctx, creator, request_models.CreateExpenseRequest{
		TripID:      tripId,
		Amount:      42.50,
		Description: "Groceries",
		Date:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if expense.Currency != "USD" {
		t.Fatalf("default currency = %q, want USD", expense.Currency)
	}
	if expense.Type != "expense" {
		t.Fatalf("default type = %q, want expense", expense.Type)
	}
	if expense.PayerID != creator.String() {
		t.Fatalf("payer = %s, want the caller", expense.PayerID)
	}
}

func TestCreateExpenseRequiresMembership(t *testing.T) {
	tripId, _, _, svc := newExpenseFixture(t)

	_, err := svc.CreateExpense(context.Background(), uuid.New(), request_models.CreateExpenseRequest{
		TripID:      tripId,
		Amount:      10,
		Description: "Gatecrash",
		Date:        time.Now(),
	})
	if !errors.Is(err, utils.ErrNotTripMember) {
		t.Fatalf("expected ErrNotTripMember, got %v", err)
	}
}

func TestExpenseEditPayerOnly(t *testing.T) {
	tripId, creator, expenseTripRepo, svc := newExpenseFixture(t)
	ctx := context.Background()

	other := uuid.New()
	expenseTripRepo.members[memberKey(tripId, other)] = &db_models.ExpenseTripMember{
		TripID: tripId, UserID: other, Role: db_models.TripRoleMember,
	}

	created, err := svc.CreateExpense(ctx, creator, request_models.CreateExpenseRequest{
		TripID:      tripId,
		Amount:      100,
		Description: "Hotel",
		Date:        time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	expenseId := uuid.MustParse(created.ID)

	amount := 120.0
	if _, err := svc.UpdateExpense(ctx, expenseId, other, request_models.UpdateExpenseRequest{Amount: &amount}); !errors.Is(err, utils.ErrNotResourceOwner) {
		t.Fatalf("non-payer update should fail, got %v", err)
	}
	if err := svc.DeleteExpense(ctx, expenseId, other); !errors.Is(err, utils.ErrNotResourceOwner) {
		t.Fatalf("non-payer delete should fail, got %v", err)
	}

	updated, err := svc.UpdateExpense(ctx, expenseId, creator, request_models.UpdateExpenseRequest{Amount: &amount})
	if err != nil {
		t.Fatalf("payer update failed: %v", err)
	}
	if updated.Amount != 120 {
		t.Fatalf("amount = %v, want 120", updated.Amount)
	}
	if err := svc.DeleteExpense(ctx, expenseId, creator); err != nil {
		t.Fatalf("payer delete failed: %v", err)
	}
}
