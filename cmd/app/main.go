package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellness/cmd/fx/auth_fx"
	"wellness/cmd/fx/controllers_fx"
	"wellness/cmd/fx/dashboard_fx"
	"wellness/cmd/fx/db_fx"
	"wellness/cmd/fx/mail_fx"
	"wellness/cmd/fx/memcache_fx"
	"wellness/cmd/fx/notification_fx"
	"wellness/cmd/fx/seed_fx"
	"wellness/cmd/fx/stats_fx"
	"wellness/cmd/fx/user_fx"
	"wellness/internal/api/controllers"
	"wellness/internal/infra"
	"wellness/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		user_fx.Module,
		notification_fx.Module,
		auth_fx.Module,
		dashboard_fx.Module,
		stats_fx.Module,
		controllers_fx.Module,
		seed_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	notificationController *controllers.NotificationController,
	statsController *controllers.StatsController,
	userController *controllers.UserController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, dashboardController, notificationController, statsController, userController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	notificationController *controllers.NotificationController,
	statsController *controllers.StatsController,
	userController *controllers.UserController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authController.Logout)
	authGroup.POST("/forgot-password", authController.ForgotPassword)
	authGroup.POST("/reset-password", authController.ResetPassword)

	r.GET("/dashboard", dashboardController.GetDashboard)

	notificationGroup := r.Group("/notifications")
	notificationGroup.GET("", notificationController.GetNotifications)
	notificationGroup.PUT("/:id/read", notificationController.MarkAsRead)
	notificationGroup.PUT("/read-all", notificationController.MarkAllAsRead)

	r.GET("/stats", statsController.GetStats)

	userGroup := r.Group("/user")
	userGroup.GET("/profile", userController.GetUserProfile)
	userGroup.PUT("/preferences", userController.UpdatePreferences)
}
