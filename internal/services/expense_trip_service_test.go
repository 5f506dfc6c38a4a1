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

func newExpenseTripFixture() (*fakeExpenseTripRepo, *fakeExpenseRepo, ExpenseTripServiceInterface) {
	expenseTripRepo := newFakeExpenseTripRepo()
	expenseRepo := newFakeExpenseRepo()
	svc := NewExpenseTripService(expenseTripRepo, expenseRepo)
	return expenseTripRepo, expenseRepo, svc
}

func TestExpenseTripVisibleToCreatorOnly(t *testing.T) {
	_, _, svc := newExpenseTripFixture()
	ctx := context.Background()
	creator := uuid.New()

	created, err := svc.CreateTrip(ctx, creator, request_models.CreateExpenseTripRequest{Name: "Eurotrip", Budget: 2500})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	tripId := uuid.MustParse(created.ID)

	if _, err := svc.GetTrip(ctx, tripId, creator); err != nil {
		t.Fatalf("creator should see the trip: %v", err)
	}
	if _, err := svc.GetTrip(ctx, tripId, uuid.New()); !errors.Is(err, utils.ErrNotResourceOwner) {
		t.Fatalf("expected ErrNotResourceOwner, got %v", err)
	}
	if err := svc.DeleteTrip(ctx, tripId, uuid.New()); !errors.Is(err, utils.ErrNotResourceOwner) {
		t.Fatalf("expected ErrNotResourceOwner on delete, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	_, expenseRepo, svc := newExpenseTripFixture()
	ctx := context.Background()
	creator := uuid.New()

	created, err := svc.CreateTrip(ctx, creator, request_models.CreateExpenseTripRequest{Name: "Weekend"})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	tripId := uuid.MustParse(created.ID)

	payerA := uuid.New()
	payerB := uuid.New()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	seed := []db_models.Expense{
		{TripID: tripId, PayerID: payerA, Amount: 100, Category: "food", Type: "expense", Date: date},
		{TripID: tripId, PayerID: payerA, Amount: 40, Category: "", Type: "expense", Date: date},
		{TripID: tripId, PayerID: payerB, Amount: 60, Category: "food", Type: "expense", Date: date},
		{TripID: tripId, PayerID: payerB, Amount: 500, Type: "income", Date: date},
		{TripID: tripId, PayerID: payerA, Amount: 80, Type: "settled", Date: date},
	}
	for i := range seed {
		if err := expenseRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	summary, err := svc.Summarize(ctx, tripId, creator)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if summary.TotalSpent != 200 {
		t.Fatalf("TotalSpent = %v, want 200 (settlements must not count)", summary.TotalSpent)
	}
	if summary.TotalIncome != 500 {
		t.Fatalf("TotalIncome = %v, want 500", summary.TotalIncome)
	}

	payerTotals := map[string]float64{}
	for _, p := range summary.ByPayer {
		payerTotals[p.PayerID] = p.Total
	}
	if payerTotals[payerA.String()] != 140 {
		t.Fatalf("payer A total = %v, want 140", payerTotals[payerA.String()])
	}
	if payerTotals[payerB.String()] != 60 {
		t.Fatalf("payer B total = %v, want 60", payerTotals[payerB.String()])
	}

	categoryTotals := map[string]float64{}
	for _, c := range summary.ByCategory {
		categoryTotals[c.Category] = c.Total
	}
	if categoryTotals["food"] != 160 {
		t.Fatalf("food total = %v, want 160", categoryTotals["food"])
	}
	if categoryTotals["uncategorized"] != 40 {
		t.Fatalf("uncategorized total = %v, want 40", categoryTotals["uncategorized"])
	}
}

func TestSummarizeEmptyTrip(t *testing.T) {
	_, _, svc := newExpenseTripFixture()
	ctx := context.Background()
	creator := uuid.New()

	created, err := svc.CreateTrip(ctx, creator, request_models.CreateExpenseTripRequest{Name: "Empty"})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}

	summary, err := svc.Summarize(ctx, uuid.MustParse(created.ID), creator)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.TotalSpent != 0 || summary.TotalIncome != 0 {
		t.Fatalf("empty trip should have zero totals: %+v", summary)
	}
	if summary.ByPayer == nil || summary.ByCategory == nil {
		t.Fatal("breakdown slices should be empty, not nil")
	}
}
