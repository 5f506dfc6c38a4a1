package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripify/internal/models/request_models"
	"tripify/internal/services"
	"tripify/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateTrip godoc
// @Summary Create an itinerary trip
// @Description The caller becomes its owner and a join code is generated
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryTripRequest true "Itinerary trip payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips [post]
func (i *ItineraryController) CreateTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateItineraryTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := i.itineraryService.CreateTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Itinerary trip created successfully")
}

// ListMyTrips godoc
// @Summary List itinerary trips the caller is a member of
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips [get]
func (i *ItineraryController) ListMyTrips(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	trips, err := i.itineraryService.ListMyTrips(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Itinerary trips fetched successfully")
}

// GetTrip godoc
// @Summary Get an itinerary trip by ID
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Itinerary trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/{tripId} [get]
func (i *ItineraryController) GetTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	trip, err := i.itineraryService.GetTrip(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Itinerary trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update an itinerary trip
// @Description Requires the editor role
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Itinerary trip ID"
// @Param request body request_models.UpdateItineraryTripRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/{tripId} [put]
func (i *ItineraryController) UpdateTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.UpdateItineraryTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := i.itineraryService.UpdateTrip(c.Request.Context(), tripId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Itinerary trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete an itinerary trip
// @Description Owner only
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Itinerary trip ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/{tripId} [delete]
func (i *ItineraryController) DeleteTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteTrip(c.Request.Context(), tripId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// JoinTrip godoc
// @Summary Join an itinerary trip by code
// @Description Joining is idempotent; new members get the editor role
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.JoinItineraryTripRequest true "Join payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/join [post]
func (i *ItineraryController) JoinTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.JoinItineraryTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := i.itineraryService.JoinTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Joined itinerary trip successfully")
}

// CreateDay godoc
// @Summary Add a day to an itinerary trip
// @Description Requires the editor role; day numbers are unique per trip
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Itinerary trip ID"
// @Param request body request_models.CreateDayRequest true "Day payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/{tripId}/days [post]
func (i *ItineraryController) CreateDay(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	day, err := i.itineraryService.CreateDay(c.Request.Context(), tripId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, day, "Day created successfully")
}

// ListDays godoc
// @Summary List the days of an itinerary trip
// @Description Days ordered by day number, each with its activities
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Itinerary trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/{tripId}/days [get]
func (i *ItineraryController) ListDays(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	days, err := i.itineraryService.ListDays(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Days fetched successfully")
}

// UpdateDay godoc
// @Summary Update a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param dayId path string true "Day ID"
// @Param request body request_models.UpdateDayRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/days/{dayId} [put]
func (i *ItineraryController) UpdateDay(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	dayId, ok := pathUUID(c, "dayId")
	if !ok {
		return
	}

	var req request_models.UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	day, err := i.itineraryService.UpdateDay(c.Request.Context(), dayId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Day updated successfully")
}

// DeleteDay godoc
// @Summary Delete a day
// @Description Cascades to the day's activities
// @Tags Itinerary
// @Produce json
// @Param dayId path string true "Day ID"
// @Success 204
// @Security BearerAuth
// @Router /itinerary/days/{dayId} [delete]
func (i *ItineraryController) DeleteDay(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	dayId, ok := pathUUID(c, "dayId")
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteDay(c.Request.Context(), dayId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// CreateActivity godoc
// @Summary Add an activity to a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param dayId path string true "Day ID"
// @Param request body request_models.CreateActivityRequest true "Activity payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/days/{dayId}/activities [post]
func (i *ItineraryController) CreateActivity(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	dayId, ok := pathUUID(c, "dayId")
	if !ok {
		return
	}

	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := i.itineraryService.CreateActivity(c.Request.Context(), dayId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, activity, "Activity created successfully")
}

// ListActivities godoc
// @Summary List the activities of a day
// @Description Ordered by order index
// @Tags Itinerary
// @Produce json
// @Param dayId path string true "Day ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/days/{dayId}/activities [get]
func (i *ItineraryController) ListActivities(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	dayId, ok := pathUUID(c, "dayId")
	if !ok {
		return
	}

	activities, err := i.itineraryService.ListActivities(c.Request.Context(), dayId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/activities/{activityId} [put]
func (i *ItineraryController) UpdateActivity(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	activityId, ok := pathUUID(c, "activityId")
	if !ok {
		return
	}

	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := i.itineraryService.UpdateActivity(c.Request.Context(), activityId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags Itinerary
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 204
// @Security BearerAuth
// @Router /itinerary/activities/{activityId} [delete]
func (i *ItineraryController) DeleteActivity(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	activityId, ok := pathUUID(c, "activityId")
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteActivity(c.Request.Context(), activityId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// UploadActivityPhoto godoc
// @Summary Attach a photo to an activity
// @Description Accepts jpeg, png and webp; replaces the previous photo if any
// @Tags Itinerary
// @Accept multipart/form-data
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param file formData file true "Photo file"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/activities/{activityId}/photo [post]
func (i *ItineraryController) UploadActivityPhoto(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	activityId, ok := pathUUID(c, "activityId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	activity, err := i.itineraryService.UploadActivityPhoto(c.Request.Context(), activityId, userId, file, fileHeader.Filename, contentType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity photo uploaded successfully")
}

// CreatePackingItem godoc
// @Summary Add a packing item to an itinerary trip
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Itinerary trip ID"
// @Param request body request_models.CreatePackingItemRequest true "Packing item payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/{tripId}/packing [post]
func (i *ItineraryController) CreatePackingItem(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.CreatePackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := i.itineraryService.CreatePackingItem(c.Request.Context(), tripId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Packing item created successfully")
}

// ListPackingItems godoc
// @Summary List the packing items of an itinerary trip
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Itinerary trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/trips/{tripId}/packing [get]
func (i *ItineraryController) ListPackingItems(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	items, err := i.itineraryService.ListPackingItems(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Packing items fetched successfully")
}

// TogglePackingItem godoc
// @Summary Toggle a packing item's checked state
// @Description Any member may toggle
// @Tags Itinerary
// @Produce json
// @Param itemId path string true "Packing item ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/packing/{itemId}/toggle [patch]
func (i *ItineraryController) TogglePackingItem(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	itemId, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	item, err := i.itineraryService.TogglePackingItem(c.Request.Context(), itemId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Packing item toggled successfully")
}

// DeletePackingItem godoc
// @Summary Delete a packing item
// @Tags Itinerary
// @Produce json
// @Param itemId path string true "Packing item ID"
// @Success 204
// @Security BearerAuth
// @Router /itinerary/packing/{itemId} [delete]
func (i *ItineraryController) DeletePackingItem(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	itemId, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	if err := i.itineraryService.DeletePackingItem(c.Request.Context(), itemId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
