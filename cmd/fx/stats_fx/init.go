package stats_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellness/internal/repositories"
	"wellness/internal/services"
)

var Module = fx.Provide(
	provideStatsService, provideGoalRepo, provideAchievementRepo)

func provideGoalRepo(db *gorm.DB) repositories.GoalRepository {
	return repositories.NewGoalRepository(db)
}

func provideAchievementRepo(db *gorm.DB) repositories.AchievementRepository {
	return repositories.NewAchievementRepository(db)
}

func provideStatsService(
	userRepo repositories.UserRepository,
	metricRepo repositories.MetricRepository,
	goalRepo repositories.GoalRepository,
	achievementRepo repositories.AchievementRepository,
) services.StatsServiceInterface {
	return services.NewStatsService(userRepo, metricRepo, goalRepo, achievementRepo)
}
