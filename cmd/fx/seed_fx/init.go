package seed_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellness/internal/repositories"
	"wellness/internal/seed"
)

var Module = fx.Invoke(runSeed)

func runSeed(db *gorm.DB, weeklyRepo repositories.WeeklyProgressRepository) {
	if err := seed.Run(db, weeklyRepo); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
