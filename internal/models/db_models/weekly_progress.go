package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeeklyProgress has a persisted schema, but the dashboard endpoint
// synthesizes a transient instance per request instead of reading it.
// Stored rows currently only come from seeding and future history work.
type WeeklyProgress struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	WeekStartDate datatypes.Date `gorm:"not null"`
	Days          []DayProgress  `gorm:"foreignKey:WeeklyProgressID"`
}

type DayProgress struct {
	BaseModel
	WeeklyProgressID uuid.UUID `gorm:"type:uuid;index;not null"`

	Date datatypes.Date `gorm:"not null"`
	Day  string         `gorm:"size:10;not null"`

	// 0.0 to 1.0
	Value     float64 `gorm:"not null"`
	Completed bool    `gorm:"not null"`
}
