package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
)

type AchievementRepository interface {
	FindByUserNewestUnlockFirst(ctx context.Context, userID uuid.UUID) ([]db_models.Achievement, error)
	FindUnlockedByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Achievement, error)
	Insert(ctx context.Context, achievement *db_models.Achievement) error
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) FindByUserNewestUnlockFirst(ctx context.Context, userID uuid.UUID) ([]db_models.Achievement, error) {
	var achievements []db_models.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepository) FindUnlockedByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Achievement, error) {
	var achievements []db_models.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND unlocked = ?", userID, true).
		Order("unlocked_at DESC").
		Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepository) Insert(ctx context.Context, achievement *db_models.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}
