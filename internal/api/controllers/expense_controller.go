package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripify/internal/models/request_models"
	"tripify/internal/services"
	"tripify/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// CreateExpense godoc
// @Summary Record an expense
// @Description The caller must be a member of the target expense trip
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [post]
func (e *ExpenseController) CreateExpense(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := e.expenseService.CreateExpense(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, expense, "Expense recorded successfully")
}

// ListTripExpenses godoc
// @Summary List expenses of an expense trip
// @Tags Expenses
// @Produce json
// @Param tripId path string true "Expense trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/trip/{tripId} [get]
func (e *ExpenseController) ListTripExpenses(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	expenses, err := e.expenseService.ListTripExpenses(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

// UpdateExpense godoc
// @Summary Update an expense
// @Description Only the payer may edit an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expenseId path string true "Expense ID"
// @Param request body request_models.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/{expenseId} [put]
func (e *ExpenseController) UpdateExpense(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	expenseId, ok := pathUUID(c, "expenseId")
	if !ok {
		return
	}

	var req request_models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := e.expenseService.UpdateExpense(c.Request.Context(), expenseId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense updated successfully")
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Description Only the payer may delete an expense
// @Tags Expenses
// @Produce json
// @Param expenseId path string true "Expense ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/{expenseId} [delete]
func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	expenseId, ok := pathUUID(c, "expenseId")
	if !ok {
		return
	}

	if err := e.expenseService.DeleteExpense(c.Request.Context(), expenseId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
