package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := autoMigrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Habit{},
		&db_models.Metric{},
		&db_models.Goal{},
		&db_models.Notification{},
		&db_models.Achievement{},
		&db_models.WeeklyProgress{},
		&db_models.DayProgress{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
