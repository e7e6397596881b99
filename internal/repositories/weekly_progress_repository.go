package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
)

// WeeklyProgressRepository backs the stored weekly-history schema. The
// dashboard synthesizes its week transiently and does not read from here;
// only seeding writes rows today.
type WeeklyProgressRepository interface {
	FindByUserAndWeekStart(ctx context.Context, userID uuid.UUID, weekStart datatypes.Date) (*db_models.WeeklyProgress, error)
	Insert(ctx context.Context, progress *db_models.WeeklyProgress) error
}

type weeklyProgressRepository struct {
	db *gorm.DB
}

func NewWeeklyProgressRepository(db *gorm.DB) WeeklyProgressRepository {
	return &weeklyProgressRepository{db: db}
}

func (r *weeklyProgressRepository) FindByUserAndWeekStart(ctx context.Context, userID uuid.UUID, weekStart datatypes.Date) (*db_models.WeeklyProgress, error) {
	var progress db_models.WeeklyProgress
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (r *weeklyProgressRepository) Insert(ctx context.Context, progress *db_models.WeeklyProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}
