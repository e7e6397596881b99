package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
)

type NotificationRepository interface {
	FindByUserNewestFirst(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error)
	FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	Insert(ctx context.Context, notification *db_models.Notification) error
	Update(ctx context.Context, notification *db_models.Notification) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FindByUserNewestFirst(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&n).Error
	return n, err
}

func (r *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) Update(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
