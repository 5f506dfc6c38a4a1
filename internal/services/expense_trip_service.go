package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/internal/models/response_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

type ExpenseTripServiceInterface interface {
	CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateExpenseTripRequest) (*response_models.ExpenseTripResponse, error)
	ListMyTrips(ctx context.Context, userId uuid.UUID) ([]response_models.ExpenseTripResponse, error)
	GetTrip(ctx context.Context, tripId, userId uuid.UUID) (*response_models.ExpenseTripResponse, error)
	DeleteTrip(ctx context.Context, tripId, userId uuid.UUID) error
	Summarize(ctx context.Context, tripId, userId uuid.UUID) (*response_models.ExpenseTripSummaryResponse, error)
}

type ExpenseTripService struct {
	expenseTripRepo repositories.ExpenseTripRepository
	expenseRepo     repositories.ExpenseRepository
}

func NewExpenseTripService(
	expenseTripRepo repositories.ExpenseTripRepository,
	expenseRepo repositories.ExpenseRepository) ExpenseTripServiceInterface {
	return &ExpenseTripService{
		expenseTripRepo: expenseTripRepo,
		expenseRepo:     expenseRepo,
	}
}

func toExpenseTripResponse(trip *db_models.ExpenseTrip) *response_models.ExpenseTripResponse {
	resp := &response_models.ExpenseTripResponse{
		ID:          trip.ID.String(),
		Name:        trip.Name,
		Description: trip.Description,
		Budget:      trip.Budget,
		CreatedBy:   trip.CreatedBy.String(),
		CreatedAt:   trip.CreatedAt,
		Members:     []response_models.TripMemberResponse{},
	}
	for _, m := range trip.Members {
		resp.Members = append(resp.Members, response_models.TripMemberResponse{
			UserID: m.UserID.String(),
			Name:   m.User.Name,
			Email:  m.User.Email,
			Role:   string(m.Role),
		})
	}
	return resp
}

func (e *ExpenseTripService) CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateExpenseTripRequest) (*response_models.ExpenseTripResponse, error) {
	trip := &db_models.ExpenseTrip{
		Name:        request.Name,
		Description: request.Description,
		Budget:      request.Budget,
		CreatedBy:   userId,
	}
	if err := e.expenseTripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := e.expenseTripRepo.FindByID(ctx, trip.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	return toExpenseTripResponse(created), nil
}

func (e *ExpenseTripService) ListMyTrips(ctx context.Context, userId uuid.UUID) ([]response_models.ExpenseTripResponse, error) {
	trips, err := e.expenseTripRepo.ListByCreator(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ExpenseTripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, *toExpenseTripResponse(&trips[i]))
	}
	return responses, nil
}

// requireCreator loads the trip and enforces the family's visibility rule:
// expense trips are only exposed to their creator.
func (e *ExpenseTripService) requireCreator(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ExpenseTrip, error) {
	trip, err := e.expenseTripRepo.FindByID(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.CreatedBy != userId {
		return nil, utils.ErrNotResourceOwner
	}
	return trip, nil
}

func (e *ExpenseTripService) GetTrip(ctx context.Context, tripId, userId uuid.UUID) (*response_models.ExpenseTripResponse, error) {
	trip, err := e.requireCreator(ctx, tripId, userId)
	if err != nil {
		return nil, err
	}
	return toExpenseTripResponse(trip), nil
}

func (e *ExpenseTripService) DeleteTrip(ctx context.Context, tripId, userId uuid.UUID) error {
	if _, err := e.requireCreator(ctx, tripId, userId); err != nil {
		return err
	}
	if err := e.expenseTripRepo.Delete(ctx, tripId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *ExpenseTripService) Summarize(ctx context.Context, tripId, userId uuid.UUID) (*response_models.ExpenseTripSummaryResponse, error) {
	if _, err := e.requireCreator(ctx, tripId, userId); err != nil {
		return nil, err
	}

	expenses, err := e.expenseRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := &response_models.ExpenseTripSummaryResponse{
		TripID:     tripId.String(),
		ByPayer:    []response_models.PayerTotal{},
		ByCategory: []response_models.CategoryTotal{},
	}

	byPayer := map[string]float64{}
	byCategory := map[string]float64{}
	for _, exp := range expenses {
		switch exp.Type {
		case "income":
			summary.TotalIncome += exp.Amount
		case "settled":
			// Settlement transfers balance debts; they are not spend.
		default:
			summary.TotalSpent += exp.Amount
			byPayer[exp.PayerID.String()] += exp.Amount
			category := exp.Category
			if category == "" {
				category = "uncategorized"
			}
			byCategory[category] += exp.Amount
		}
	}

	for payer, total := range byPayer {
		summary.ByPayer = append(summary.ByPayer, response_models.PayerTotal{PayerID: payer, Total: total})
	}
	for category, total := range byCategory {
		summary.ByCategory = append(summary.ByCategory, response_models.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(summary.ByPayer, func(i, j int) bool {
		return summary.ByPayer[i].PayerID < summary.ByPayer[j].PayerID
	})
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Category < summary.ByCategory[j].Category
	})

	return summary, nil
}
