package db_models

import "github.com/google/uuid"

// Metric is a point-in-time dashboard snapshot ("Calories Burned", "1,245",
// "+15%"), not a time series. Value stays a string because the clients show
// it verbatim.
type Metric struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title    string `gorm:"size:100;not null"`
	Value    string `gorm:"size:50;not null"`
	Subtitle string `gorm:"size:100"`
	Trend    string `gorm:"size:20"`
	Color    string `gorm:"size:20"`

	// yyyy-MM-dd string, matching the wire format the apps submit.
	RecordDate string `gorm:"size:10;not null;index"`
}
