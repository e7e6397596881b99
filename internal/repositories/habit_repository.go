package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
)

type HabitRepository interface {
	FindActiveByUserOrdered(ctx context.Context, userID uuid.UUID) ([]db_models.Habit, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Habit, error)
	Insert(ctx context.Context, habit *db_models.Habit) error
}

type habitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) FindActiveByUserOrdered(ctx context.Context, userID uuid.UUID) ([]db_models.Habit, error) {
	var habits []db_models.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("display_order ASC").
		Find(&habits).Error
	return habits, err
}

func (r *habitRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Habit, error) {
	var habits []db_models.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Find(&habits).Error
	return habits, err
}

func (r *habitRepository) Insert(ctx context.Context, habit *db_models.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}
