package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness/internal/services"
	"wellness/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// GetNotifications godoc
// @Summary List notifications grouped by recency
// @Tags Notifications
// @Produce json
// @Param userId query string true "User id"
// @Success 200 {array} response_models.NotificationGroupResponse
// @Router /notifications [get]
func (n *NotificationController) GetNotifications(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	groups, err := n.notificationService.GetNotifications(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// MarkAsRead godoc
// @Summary Mark one notification as read
// @Tags Notifications
// @Param id path string true "Notification id"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /notifications/{id}/read [put]
func (n *NotificationController) MarkAsRead(c *gin.Context) {
	id, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	if err := n.notificationService.MarkAsRead(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllAsRead godoc
// @Summary Mark all of a user's notifications as read
// @Tags Notifications
// @Param userId query string true "User id"
// @Success 204
// @Router /notifications/read-all [put]
func (n *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := n.notificationService.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
