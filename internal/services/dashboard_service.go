package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wellness/internal/models/response_models"
	"wellness/internal/repositories"
	"wellness/pkg/utils"
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*response_models.DashboardResponse, error)
}

type DashboardService struct {
	userRepo   repositories.UserRepository
	habitRepo  repositories.HabitRepository
	metricRepo repositories.MetricRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	habitRepo repositories.HabitRepository,
	metricRepo repositories.MetricRepository,
) DashboardServiceInterface {
	return &DashboardService{
		userRepo:   userRepo,
		habitRepo:  habitRepo,
		metricRepo: metricRepo,
	}
}

// GetDashboard aggregates the user, the latest metrics, the active habits in
// display order, and a weekly progress block synthesized for the current
// week.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*response_models.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	metrics, err := s.metricRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.FindActiveByUserOrdered(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekly, err := s.buildWeeklyProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response_models.DashboardResponse{
		User:           response_models.NewUserResponse(user),
		Metrics:        response_models.NewMetricResponses(metrics),
		Habits:         response_models.NewHabitResponses(habits),
		WeeklyProgress: weekly,
	}, nil
}

// buildWeeklyProgress synthesizes the Monday-to-Sunday week view. A day is
// completed when more than half of the user's active habits are completed.
// TODO: per-day habit history is not recorded yet, so all seven days mirror
// today's completion state.
func (s *DashboardService) buildWeeklyProgress(ctx context.Context, userID uuid.UUID) (response_models.WeeklyProgressResponse, error) {
	habits, err := s.habitRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return response_models.WeeklyProgressResponse{}, err
	}

	completed := false
	if len(habits) > 0 {
		count := 0
		for i := range habits {
			if habits[i].Completed {
				count++
			}
		}
		completed = count > len(habits)/2
	}

	value := 0.0
	if completed {
		value = 1.0
	}

	days := make([]response_models.DayProgressResponse, 0, len(dayNames))
	for _, name := range dayNames {
		days = append(days, response_models.DayProgressResponse{
			Day:       name,
			Value:     value,
			Completed: completed,
		})
	}

	return response_models.WeeklyProgressResponse{Days: days}, nil
}

// StartOfWeek returns the Monday of t's week, normalized to midnight.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
