package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"wellness/internal/models/db_models"
	"wellness/internal/models/response_models"
	"wellness/internal/repositories"
	"wellness/pkg/utils"
)

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context, userID uuid.UUID) ([]response_models.NotificationGroupResponse, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	CreateNotification(ctx context.Context, user *db_models.User, title, message string, notificationType db_models.NotificationType) (*db_models.Notification, error)
	CreateWelcomeNotification(ctx context.Context, user *db_models.User) error
	CreateAchievementNotification(ctx context.Context, user *db_models.User, achievementTitle string) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

// GetNotifications returns the user's notifications newest-first, bucketed
// into Today (last 24h), Yesterday (24h-48h) and Earlier. Empty buckets are
// omitted.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID) ([]response_models.NotificationGroupResponse, error) {
	notifications, err := s.notificationRepo.FindByUserNewestFirst(ctx, userID)
	if err != nil {
		return nil, err
	}
	return groupByRecency(notifications, time.Now()), nil
}

func groupByRecency(notifications []db_models.Notification, now time.Time) []response_models.NotificationGroupResponse {
	groups := []response_models.NotificationGroupResponse{}
	if len(notifications) == 0 {
		return groups
	}

	dayAgo := now.Unix() - int64((24 * time.Hour).Seconds())
	twoDaysAgo := now.Unix() - int64((48 * time.Hour).Seconds())

	var today, yesterday, earlier []response_models.NotificationResponse
	for i := range notifications {
		n := &notifications[i]
		dto := response_models.NewNotificationResponse(n)
		switch {
		case n.CreatedAt > dayAgo:
			today = append(today, dto)
		case n.CreatedAt > twoDaysAgo:
			yesterday = append(yesterday, dto)
		default:
			earlier = append(earlier, dto)
		}
	}

	if len(today) > 0 {
		groups = append(groups, response_models.NotificationGroupResponse{Date: "Today", Notifications: today})
	}
	if len(yesterday) > 0 {
		groups = append(groups, response_models.NotificationGroupResponse{Date: "Yesterday", Notifications: yesterday})
	}
	if len(earlier) > 0 {
		groups = append(groups, response_models.NotificationGroupResponse{Date: "Earlier", Notifications: earlier})
	}

	return groups
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return utils.ErrNotificationNotFound
	}

	notification.Read = true
	return s.notificationRepo.Update(ctx, notification)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *NotificationService) CreateNotification(ctx context.Context, user *db_models.User, title, message string, notificationType db_models.NotificationType) (*db_models.Notification, error) {
	notification := &db_models.Notification{
		UserID:  user.ID,
		Title:   title,
		Message: message,
		Type:    notificationType,
		Read:    false,
	}

	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		return nil, err
	}

	log.Printf("Created %s notification %s for user %s", notificationType, notification.ID, user.ID)
	return notification, nil
}

func (s *NotificationService) CreateWelcomeNotification(ctx context.Context, user *db_models.User) error {
	_, err := s.CreateNotification(ctx, user,
		"Welcome to Wellness!",
		"Thanks for joining Wellness! Let's start your journey to a healthier lifestyle.",
		db_models.NotificationUpdate)
	return err
}

func (s *NotificationService) CreateAchievementNotification(ctx context.Context, user *db_models.User, achievementTitle string) error {
	_, err := s.CreateNotification(ctx, user,
		"Achievement Unlocked!",
		"Congratulations! You've earned: "+achievementTitle,
		db_models.NotificationAchievement)
	return err
}
