package db_models

import "github.com/google/uuid"

type NotificationType string

const (
	NotificationReminder    NotificationType = "REMINDER"
	NotificationAchievement NotificationType = "ACHIEVEMENT"
	NotificationUpdate      NotificationType = "UPDATE"
	NotificationAlert       NotificationType = "ALERT"
)

// Notification creation time is server-assigned at persist time via
// BaseModel.CreatedAt; the recency grouping in the service depends on it.
type Notification struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title   string           `gorm:"size:200;not null"`
	Message string           `gorm:"size:1000;not null"`
	Type    NotificationType `gorm:"size:20;not null"`
	Read    bool             `gorm:"not null"`
}
