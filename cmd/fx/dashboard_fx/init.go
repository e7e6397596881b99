package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellness/internal/repositories"
	"wellness/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideHabitRepo, provideMetricRepo, provideWeeklyProgressRepo)

func provideHabitRepo(db *gorm.DB) repositories.HabitRepository {
	return repositories.NewHabitRepository(db)
}

func provideMetricRepo(db *gorm.DB) repositories.MetricRepository {
	return repositories.NewMetricRepository(db)
}

func provideWeeklyProgressRepo(db *gorm.DB) repositories.WeeklyProgressRepository {
	return repositories.NewWeeklyProgressRepository(db)
}

func provideDashboardService(
	userRepo repositories.UserRepository,
	habitRepo repositories.HabitRepository,
	metricRepo repositories.MetricRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(userRepo, habitRepo, metricRepo)
}
