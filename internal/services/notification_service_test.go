package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness/internal/models/db_models"
	"wellness/pkg/utils"
)

func notificationAt(userID uuid.UUID, title string, createdAt int64, read bool) db_models.Notification {
	return db_models.Notification{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: createdAt},
		UserID:    userID,
		Title:     title,
		Message:   "m",
		Type:      db_models.NotificationUpdate,
		Read:      read,
	}
}

func TestGroupByRecency(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	notifications := []db_models.Notification{
		notificationAt(userID, "newest", now.Unix(), false),
		notificationAt(userID, "this morning", now.Add(-20*time.Hour).Unix(), false),
		notificationAt(userID, "yesterday", now.Add(-30*time.Hour).Unix(), true),
		notificationAt(userID, "last week", now.Add(-50*time.Hour).Unix(), true),
	}

	groups := groupByRecency(notifications, now)
	require.Len(t, groups, 3)

	assert.Equal(t, "Today", groups[0].Date)
	require.Len(t, groups[0].Notifications, 2)
	assert.Equal(t, "newest", groups[0].Notifications[0].Title)
	assert.Equal(t, "this morning", groups[0].Notifications[1].Title)

	assert.Equal(t, "Yesterday", groups[1].Date)
	require.Len(t, groups[1].Notifications, 1)
	assert.Equal(t, "yesterday", groups[1].Notifications[0].Title)

	assert.Equal(t, "Earlier", groups[2].Date)
	require.Len(t, groups[2].Notifications, 1)
	assert.Equal(t, "last week", groups[2].Notifications[0].Title)
}

func TestGroupByRecencyOmitsEmptyBuckets(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	notifications := []db_models.Notification{
		notificationAt(userID, "old news", now.Add(-72*time.Hour).Unix(), true),
	}

	groups := groupByRecency(notifications, now)
	require.Len(t, groups, 1)
	assert.Equal(t, "Earlier", groups[0].Date)
}

func TestGroupByRecencyEmptyInput(t *testing.T) {
	groups := groupByRecency(nil, time.Now())
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGetNotificationsNewestFirst(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	repo := &fakeNotificationRepo{notifications: []db_models.Notification{
		notificationAt(userID, "older", now.Add(-2*time.Hour).Unix(), false),
		notificationAt(userID, "newer", now.Add(-1*time.Hour).Unix(), false),
		notificationAt(uuid.New(), "someone else's", now.Unix(), false),
	}}
	svc := NewNotificationService(repo)

	groups, err := svc.GetNotifications(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Notifications, 2)
	assert.Equal(t, "newer", groups[0].Notifications[0].Title)
	assert.Equal(t, "older", groups[0].Notifications[1].Title)
}

func TestMarkAsRead(t *testing.T) {
	userID := uuid.New()
	n := notificationAt(userID, "unread", time.Now().Unix(), false)

	repo := &fakeNotificationRepo{notifications: []db_models.Notification{n}}
	svc := NewNotificationService(repo)

	require.NoError(t, svc.MarkAsRead(context.Background(), n.ID))
	assert.True(t, repo.notifications[0].Read)
}

func TestMarkAsReadMissing(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{})

	err := svc.MarkAsRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrNotificationNotFound)
}

func TestMarkAllAsReadIdempotent(t *testing.T) {
	userID := uuid.New()
	now := time.Now().Unix()

	repo := &fakeNotificationRepo{notifications: []db_models.Notification{
		notificationAt(userID, "a", now, false),
		notificationAt(userID, "b", now, false),
		notificationAt(userID, "c", now, true),
	}}
	svc := NewNotificationService(repo)

	require.NoError(t, svc.MarkAllAsRead(context.Background(), userID))
	require.NoError(t, svc.MarkAllAsRead(context.Background(), userID))

	count, err := svc.CountUnread(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateWelcomeNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	user := &db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	require.NoError(t, svc.CreateWelcomeNotification(context.Background(), user))

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "Welcome to Wellness!", repo.notifications[0].Title)
	assert.Equal(t, db_models.NotificationUpdate, repo.notifications[0].Type)
	assert.False(t, repo.notifications[0].Read)
}

func TestCreateAchievementNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	user := &db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	require.NoError(t, svc.CreateAchievementNotification(context.Background(), user, "7-Day Streak"))

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "Achievement Unlocked!", repo.notifications[0].Title)
	assert.Contains(t, repo.notifications[0].Message, "7-Day Streak")
	assert.Equal(t, db_models.NotificationAchievement, repo.notifications[0].Type)
}
