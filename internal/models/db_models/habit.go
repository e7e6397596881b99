package db_models

import "github.com/google/uuid"

// Habit is a recurring daily action. Completed reflects today only; the
// streak counter is maintained by the client sync flow, not recomputed here.
type Habit struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string `gorm:"size:100;not null"`
	Icon         string `gorm:"size:50"`
	Completed    bool   `gorm:"not null"`
	Streak       int    `gorm:"not null"`
	DisplayOrder int    `gorm:"not null"`
	Active       bool   `gorm:"not null;default:true"`
}
