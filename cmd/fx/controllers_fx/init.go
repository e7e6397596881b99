package controllers_fx

import (
	"go.uber.org/fx"

	"wellness/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewStatsController),
	fx.Provide(controllers.NewUserController))
