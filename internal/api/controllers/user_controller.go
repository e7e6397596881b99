package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness/internal/models/request_models"
	"wellness/internal/services"
	"wellness/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// GetUserProfile godoc
// @Summary Get the user profile
// @Tags User
// @Produce json
// @Param userId query string true "User id"
// @Success 200 {object} response_models.UserResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /user/profile [get]
func (u *UserController) GetUserProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := u.userService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePreferences godoc
// @Summary Replace the user's preferences
// @Tags User
// @Accept json
// @Produce json
// @Param userId query string true "User id"
// @Param request body request_models.PreferencesRequest true "Preferences payload"
// @Success 200 {object} response_models.UserResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /user/preferences [put]
func (u *UserController) UpdatePreferences(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	user, err := u.userService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
