package db_models

import "gorm.io/gorm"

// Preferences is embedded in User rather than stored as its own row; the
// settings screen always replaces it wholesale.
type Preferences struct {
	NotificationsEnabled bool
	DarkMode             bool
	Language             string `gorm:"size:10"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		NotificationsEnabled: true,
		DarkMode:             false,
		Language:             "en",
	}
}

// User is the aggregate root: every other entity hangs off a user id, and
// deleting a user removes all owned rows (see UserRepository.DeleteCascade).
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"size:100;not null"`
	Avatar       string `gorm:"size:500"`

	// Unix seconds of the most recent login, 0 when the user never logged in.
	LastLoginAt int64

	Active      bool        `gorm:"not null;default:true"`
	Preferences Preferences `gorm:"embedded;embeddedPrefix:pref_"`

	Habits        []Habit
	Metrics       []Metric
	Goals         []Goal
	Notifications []Notification
	Achievements  []Achievement
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if u.Preferences.Language == "" {
		u.Preferences = DefaultPreferences()
	}
	return nil
}
