package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
)

type MetricRepository interface {
	// FindLatestByUser returns all metrics for the user, most recent record
	// date first.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Metric, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, recordDate string) ([]db_models.Metric, error)
	Insert(ctx context.Context, metric *db_models.Metric) error
}

type metricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

func (r *metricRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Metric, error) {
	var metrics []db_models.Metric
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("record_date DESC").
		Find(&metrics).Error
	return metrics, err
}

func (r *metricRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, recordDate string) ([]db_models.Metric, error) {
	var metrics []db_models.Metric
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND record_date = ?", userID, recordDate).
		Find(&metrics).Error
	return metrics, err
}

func (r *metricRepository) Insert(ctx context.Context, metric *db_models.Metric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}
