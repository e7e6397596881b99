package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
)

type GoalRepository interface {
	FindActiveByUserOrderByDeadline(ctx context.Context, userID uuid.UUID) ([]db_models.Goal, error)
	Insert(ctx context.Context, goal *db_models.Goal) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) FindActiveByUserOrderByDeadline(ctx context.Context, userID uuid.UUID) ([]db_models.Goal, error) {
	var goals []db_models.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("deadline ASC").
		Find(&goals).Error
	return goals, err
}

func (r *goalRepository) Insert(ctx context.Context, goal *db_models.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}
