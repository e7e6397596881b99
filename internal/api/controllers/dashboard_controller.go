package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness/internal/services"
	"wellness/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Get dashboard data
// @Description User profile, latest metrics, active habits and the weekly progress block
// @Tags Dashboard
// @Produce json
// @Param userId query string true "User id"
// @Success 200 {object} response_models.DashboardResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
