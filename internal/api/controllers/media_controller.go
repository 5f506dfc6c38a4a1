package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripify/internal/models/request_models"
	"tripify/internal/services"
	"tripify/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

// Upload godoc
// @Summary Upload a media file
// @Description Multipart upload; an optional trip_id form field attaches the file to a trip
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file"
// @Param trip_id formData string false "Trip ID to attach the file to"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/upload [post]
func (m *MediaController) Upload(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A file is required")
		return
	}

	var tripId *uuid.UUID
	if raw := c.PostForm("trip_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid trip_id")
			return
		}
		tripId = &parsed
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	media, err := m.mediaService.Upload(c.Request.Context(), userId, tripId, file, fileHeader.Filename, contentType, fileHeader.Size)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, media, "Media uploaded successfully")
}

// ListTripMedia godoc
// @Summary List a trip's media, paginated
// @Tags Media
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/trip/{tripId} [get]
func (m *MediaController) ListTripMedia(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	result, err := m.mediaService.ListTripMedia(c.Request.Context(), tripId, userId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Media fetched successfully")
}

// ListPersonal godoc
// @Summary List the caller's personal (non-trip) media
// @Tags Media
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/personal [get]
func (m *MediaController) ListPersonal(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := m.mediaService.ListPersonal(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Media fetched successfully")
}

// ListFavorites godoc
// @Summary List the caller's favorite media
// @Tags Media
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/favorites [get]
func (m *MediaController) ListFavorites(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := m.mediaService.ListFavorites(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Media fetched successfully")
}

// UpdateMedia godoc
// @Summary Update a media item
// @Description Owner only; toggles the favorite flag or moves the item to another trip
// @Tags Media
// @Accept json
// @Produce json
// @Param mediaId path string true "Media ID"
// @Param request body request_models.UpdateMediaRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/{mediaId} [patch]
func (m *MediaController) UpdateMedia(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	mediaId, ok := pathUUID(c, "mediaId")
	if !ok {
		return
	}

	var req request_models.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	media, err := m.mediaService.Update(c.Request.Context(), mediaId, userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, media, "Media updated successfully")
}

// DeleteMedia godoc
// @Summary Delete a media item
// @Description Owner only; the trip cover photo is reassigned if it pointed at this item
// @Tags Media
// @Produce json
// @Param mediaId path string true "Media ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/{mediaId} [delete]
func (m *MediaController) DeleteMedia(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	mediaId, ok := pathUUID(c, "mediaId")
	if !ok {
		return
	}

	if err := m.mediaService.Delete(c.Request.Context(), mediaId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// Download godoc
// @Summary Download a media file
// @Description Streams the original file. Accepts the token as a query parameter for browser tabs.
// @Tags Media
// @Produce octet-stream
// @Param mediaId path string true "Media ID"
// @Param token query string false "Access token"
// @Success 200
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/{mediaId}/download [get]
func (m *MediaController) Download(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	mediaId, ok := pathUUID(c, "mediaId")
	if !ok {
		return
	}

	download, err := m.mediaService.Download(c.Request.Context(), mediaId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer download.Content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+download.Filename+`"`)
	c.DataFromReader(http.StatusOK, -1, download.MimeType, download.Content, nil)
}

// DownloadAll godoc
// @Summary Get download URLs for all of a trip's media
// @Tags Media
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/trip/{tripId}/download-all [get]
func (m *MediaController) DownloadAll(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	result, err := m.mediaService.ListTripMediaURLs(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Download URLs fetched successfully")
}
