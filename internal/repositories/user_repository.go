package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
	"wellness/pkg/utils"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*db_models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("email = ?", email).
		Count(&n).Error
	return n > 0, err
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&n).Error
	return n, err
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	// Save writes every column, including bools set back to false.
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("active", false).Error
}

// DeleteCascade removes the user and every owned row in one transaction.
// Cascading is explicit here rather than delegated to FK constraints so the
// ownership rule is visible in application code.
func (r *userRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&db_models.Habit{},
			&db_models.Metric{},
			&db_models.Goal{},
			&db_models.Notification{},
			&db_models.Achievement{},
		}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		weekIDs := tx.Model(&db_models.WeeklyProgress{}).
			Select("id").
			Where("user_id = ?", id)
		if err := tx.Where("weekly_progress_id IN (?)", weekIDs).
			Delete(&db_models.DayProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&db_models.WeeklyProgress{}).Error; err != nil {
			return err
		}

		return tx.Delete(&db_models.User{}, "id = ?", id).Error
	})
}
