package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wellness/internal/models/response_models"
	"wellness/internal/repositories"
	"wellness/pkg/utils"
)

type StatsServiceInterface interface {
	GetStats(ctx context.Context, userID uuid.UUID, period string) (*response_models.StatsResponse, error)
}

type StatsService struct {
	userRepo        repositories.UserRepository
	metricRepo      repositories.MetricRepository
	goalRepo        repositories.GoalRepository
	achievementRepo repositories.AchievementRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	metricRepo repositories.MetricRepository,
	goalRepo repositories.GoalRepository,
	achievementRepo repositories.AchievementRepository,
) StatsServiceInterface {
	return &StatsService{
		userRepo:        userRepo,
		metricRepo:      metricRepo,
		goalRepo:        goalRepo,
		achievementRepo: achievementRepo,
	}
}

// GetStats assembles overview metrics, active goals by deadline,
// achievements by newest unlock, and the weekly stat block. period is
// accepted for API compatibility but does not influence the result yet.
func (s *StatsService) GetStats(ctx context.Context, userID uuid.UUID, period string) (*response_models.StatsResponse, error) {
	log.Printf("Fetching stats for user %s, period %s", userID, period)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	overview, err := s.metricRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.FindActiveByUserOrderByDeadline(ctx, userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achievementRepo.FindByUserNewestUnlockFirst(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response_models.StatsResponse{
		Overview:     response_models.NewMetricResponses(overview),
		WeeklyStats:  weeklyStats(),
		Achievements: response_models.NewAchievementResponses(achievements),
		Goals:        response_models.NewGoalResponses(goals),
	}, nil
}

// weeklyStats returns the placeholder stat block the clients chart.
// TODO: derive these from stored metrics once per-day history lands.
func weeklyStats() []response_models.WeeklyStatResponse {
	return []response_models.WeeklyStatResponse{
		{Label: "Activity", Value: 5.2, Target: 7.0},
		{Label: "Calories", Value: 12450.0, Target: 14000.0},
		{Label: "Sleep", Value: 7.2, Target: 8.0},
		{Label: "Steps", Value: 45000.0, Target: 70000.0},
	}
}
