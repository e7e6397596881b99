package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness/internal/models/request_models"
	"wellness/internal/services"
	"wellness/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.LoginResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	resp, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Tags Auth
// @Accept json
// @Param request body request_models.ForgotPasswordRequest true "Forgot password payload"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /auth/forgot-password [post]
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	if err := a.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetPassword godoc
// @Summary Reset the password with a mailed token
// @Tags Auth
// @Accept json
// @Param request body request_models.ResetPasswordRequest true "Reset payload"
// @Success 204
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/reset-password [post]
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	if err := a.authService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Logout godoc
// @Summary Log the logout event
// @Tags Auth
// @Param userId query string true "User id"
// @Success 204
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := a.authService.Logout(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
