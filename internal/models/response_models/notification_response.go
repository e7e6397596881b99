package response_models

import (
	"wellness/internal/models/db_models"
	"wellness/pkg/utils"
)

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// NotificationGroupResponse is one recency bucket ("Today", "Yesterday",
// "Earlier"); empty buckets are never emitted.
type NotificationGroupResponse struct {
	Date          string                 `json:"date"`
	Notifications []NotificationResponse `json:"notifications"`
}

func NewNotificationResponse(n *db_models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		CreatedAt: utils.FormatTimestamp(n.CreatedAt),
	}
}
