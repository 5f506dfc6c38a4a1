package services

import (
	"context"

	"github.com/google/uuid"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/internal/models/response_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, userId uuid.UUID, request request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error)
	ListTripExpenses(ctx context.Context, tripId, userId uuid.UUID) ([]response_models.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, expenseId, userId uuid.UUID, request request_models.UpdateExpenseRequest) (*response_models.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, expenseId, userId uuid.UUID) error
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	membership  MembershipService
}

func NewExpenseService(expenseRepo repositories.ExpenseRepository, membership MembershipService) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		membership:  membership,
	}
}

func toExpenseResponse(expense *db_models.Expense) *response_models.ExpenseResponse {
	return &response_models.ExpenseResponse{
		ID:           expense.ID.String(),
		TripID:       expense.TripID.String(),
		PayerID:      expense.PayerID.String(),
		Amount:       expense.Amount,
		Currency:     expense.Currency,
		Description:  expense.Description,
		Category:     expense.Category,
		Date:         expense.Date,
		SplitDetails: expense.SplitDetails,
		Type:         expense.Type,
		CreatedAt:    expense.CreatedAt,
	}
}

func (e *ExpenseService) CreateExpense(ctx context.Context, userId uuid.UUID, request request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error) {
	// The payer must be a current member of the trip; nothing is written
	// otherwise.
	if _, err := e.membership.RequireExpenseTripMember(ctx, request.TripID, userId); err != nil {
		return nil, err
	}

	expense := &db_models.Expense{
		TripID:       request.TripID,
		PayerID:      userId,
		Amount:       request.Amount,
		Currency:     request.Currency,
		Description:  request.Description,
		Category:     request.Category,
		Date:         request.Date,
		SplitDetails: request.SplitDetails,
		Type:         request.Type,
	}
	if expense.Currency == "" {
		expense.Currency = "USD"
	}
	if expense.Type == "" {
		expense.Type = "expense"
	}

	if err := e.expenseRepo.Create(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toExpenseResponse(expense), nil
}

func (e *ExpenseService) ListTripExpenses(ctx context.Context, tripId, userId uuid.UUID) ([]response_models.ExpenseResponse, error) {
	if _, err := e.membership.RequireExpenseTripMember(ctx, tripId, userId); err != nil {
		return nil, err
	}

	expenses, err := e.expenseRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, *toExpenseResponse(&expenses[i]))
	}
	return responses, nil
}

// requirePayer loads an expense and enforces that only the payer may
// change or remove it.
func (e *ExpenseService) requirePayer(ctx context.Context, expenseId, userId uuid.UUID) (*db_models.Expense, error) {
	expense, err := e.expenseRepo.FindByID(ctx, expenseId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if expense == nil {
		return nil, utils.ErrExpenseNotFound
	}
	if expense.PayerID != userId {
		return nil, utils.ErrNotResourceOwner
	}
	return expense, nil
}

func (e *ExpenseService) UpdateExpense(ctx context.Context, expenseId, userId uuid.UUID, request request_models.UpdateExpenseRequest) (*response_models.ExpenseResponse, error) {
	expense, err := e.requirePayer(ctx, expenseId, userId)
	if err != nil {
		return nil, err
	}

	if request.Amount != nil {
		expense.Amount = *request.Amount
	}
	if request.Currency != nil {
		expense.Currency = *request.Currency
	}
	if request.Description != nil {
		expense.Description = *request.Description
	}
	if request.Category != nil {
		expense.Category = *request.Category
	}
	if request.Date != nil {
		expense.Date = *request.Date
	}
	if request.SplitDetails != nil {
		expense.SplitDetails = *request.SplitDetails
	}
	if request.Type != nil {
		expense.Type = *request.Type
	}

	if err := e.expenseRepo.Update(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toExpenseResponse(expense), nil
}

func (e *ExpenseService) DeleteExpense(ctx context.Context, expenseId, userId uuid.UUID) error {
	if _, err := e.requirePayer(ctx, expenseId, userId); err != nil {
		return err
	}
	if err := e.expenseRepo.Delete(ctx, expenseId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
