package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripify/internal/models/request_models"
	"tripify/internal/services"
	"tripify/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip; the caller becomes its admin and a join code is generated
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListMyTrips godoc
// @Summary List trips the caller is a member of
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListMyTrips(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListMyTrips(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip by ID
// @Description Members only; non-members get 403
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// JoinTrip godoc
// @Summary Join a trip by code
// @Description Joining is idempotent; a member joining again gets the trip back unchanged
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.JoinTripRequest true "Join payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/join [post]
func (t *TripController) JoinTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.JoinTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.JoinTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Joined trip successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Trip admins only; removes the trip's media blobs as well
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
