package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripify/internal/models/request_models"
	"tripify/internal/services"
	"tripify/pkg/utils"
)

type ExpenseTripController struct {
	expenseTripService services.ExpenseTripServiceInterface
}

func NewExpenseTripController(expenseTripService services.ExpenseTripServiceInterface) *ExpenseTripController {
	return &ExpenseTripController{
		expenseTripService: expenseTripService,
	}
}

// CreateTrip godoc
// @Summary Create an expense trip
// @Tags ExpenseTrips
// @Accept json
// @Produce json
// @Param request body request_models.CreateExpenseTripRequest true "Expense trip payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-trips [post]
func (e *ExpenseTripController) CreateTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateExpenseTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := e.expenseTripService.CreateTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Expense trip created successfully")
}

// ListMyTrips godoc
// @Summary List expense trips created by the caller
// @Tags ExpenseTrips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-trips [get]
func (e *ExpenseTripController) ListMyTrips(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	trips, err := e.expenseTripService.ListMyTrips(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Expense trips fetched successfully")
}

// GetTrip godoc
// @Summary Get an expense trip by ID
// @Description Visible to the creator only
// @Tags ExpenseTrips
// @Produce json
// @Param tripId path string true "Expense trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-trips/{tripId} [get]
func (e *ExpenseTripController) GetTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	trip, err := e.expenseTripService.GetTrip(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Expense trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete an expense trip
// @Description Creator only; cascades to its expenses
// @Tags ExpenseTrips
// @Produce json
// @Param tripId path string true "Expense trip ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-trips/{tripId} [delete]
func (e *ExpenseTripController) DeleteTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	if err := e.expenseTripService.DeleteTrip(c.Request.Context(), tripId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// GetSummary godoc
// @Summary Summarize an expense trip
// @Description Totals by payer and category; settled entries are excluded
// @Tags ExpenseTrips
// @Produce json
// @Param tripId path string true "Expense trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-trips/{tripId}/summary [get]
func (e *ExpenseTripController) GetSummary(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	summary, err := e.expenseTripService.Summarize(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Summary computed successfully")
}
