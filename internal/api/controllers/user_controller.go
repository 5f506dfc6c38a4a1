package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripify/internal/models/request_models"
	"tripify/internal/services"
	"tripify/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMe godoc
// @Summary Get current user profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (u *UserController) GetMe(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := u.userService.GetProfile(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateMe godoc
// @Summary Update current user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateUserRequest true "Profile update payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [put]
func (u *UserController) UpdateMe(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := u.userService.UpdateProfile(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// DeleteMe godoc
// @Summary Delete current user account
// @Description Removes the account and all of its stored media
// @Tags Users
// @Produce json
// @Success 204
// @Security BearerAuth
// @Router /users/me [delete]
func (u *UserController) DeleteMe(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := u.userService.DeleteAccount(c.Request.Context(), userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
