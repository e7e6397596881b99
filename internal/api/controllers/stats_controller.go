package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness/internal/services"
	"wellness/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetStats godoc
// @Summary Get statistics
// @Description Overview metrics, weekly stats, achievements and goals
// @Tags Stats
// @Produce json
// @Param userId query string true "User id"
// @Param period query string false "Period (default week)"
// @Success 200 {object} response_models.StatsResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /stats [get]
func (s *StatsController) GetStats(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "week")

	stats, err := s.statsService.GetStats(c.Request.Context(), userID, period)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
