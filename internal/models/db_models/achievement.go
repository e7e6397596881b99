package db_models

import "github.com/google/uuid"

type Achievement struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"size:500;not null"`
	Icon        string `gorm:"size:50"`
	Unlocked    bool   `gorm:"not null"`

	// Unix seconds; 0 while the achievement is still locked.
	UnlockedAt int64
}
