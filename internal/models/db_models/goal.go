package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Goal struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title    string         `gorm:"size:100;not null"`
	Current  float64        `gorm:"not null"`
	Target   float64        `gorm:"not null"`
	Unit     string         `gorm:"size:20"`
	Deadline datatypes.Date `gorm:"not null"`
	Achieved bool           `gorm:"not null"`
	Active   bool           `gorm:"not null;default:true"`
}
