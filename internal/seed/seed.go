package seed

import (
	"context"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wellness/internal/models/db_models"
	"wellness/internal/repositories"
	"wellness/internal/services"
	"wellness/pkg/utils"
)

// Run populates the database with the demo account when the users table is
// empty. Safe to call on every startup.
func Run(db *gorm.DB, weeklyRepo repositories.WeeklyProgressRepository) error {
	var count int64
	if err := db.Model(&db_models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already contains data, skipping initialization")
		return nil
	}

	log.Println("Initializing sample data...")

	user, err := createSampleUser(db)
	if err != nil {
		return err
	}

	if err := createHabits(db, user); err != nil {
		return err
	}
	if err := createMetrics(db, user); err != nil {
		return err
	}
	if err := createGoals(db, user); err != nil {
		return err
	}
	if err := createNotifications(db, user); err != nil {
		return err
	}
	if err := createAchievements(db, user); err != nil {
		return err
	}
	if err := createLastWeekProgress(weeklyRepo, user); err != nil {
		return err
	}

	log.Println("Sample data initialized")
	return nil
}

func createSampleUser(db *gorm.DB) (*db_models.User, error) {
	hashed, err := utils.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Email:        "user@example.com",
		PasswordHash: hashed,
		Name:         "Sarah",
		Active:       true,
		Preferences:  db_models.DefaultPreferences(),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	log.Printf("Created user: %s", user.Email)
	return user, nil
}

func createHabits(db *gorm.DB, user *db_models.User) error {
	habits := []db_models.Habit{
		{UserID: user.ID, Name: "Morning Meditation", Icon: "🧘", Completed: true, Streak: 7, DisplayOrder: 0, Active: true},
		{UserID: user.ID, Name: "Drink Water", Icon: "💧", Completed: true, Streak: 14, DisplayOrder: 1, Active: true},
		{UserID: user.ID, Name: "Exercise", Icon: "🏃", Completed: false, Streak: 3, DisplayOrder: 2, Active: true},
		{UserID: user.ID, Name: "Read Book", Icon: "📚", Completed: true, Streak: 21, DisplayOrder: 3, Active: true},
		{UserID: user.ID, Name: "No Sugar", Icon: "🍬", Completed: false, Streak: 5, DisplayOrder: 4, Active: true},
	}
	return db.Create(&habits).Error
}

func createMetrics(db *gorm.DB, user *db_models.User) error {
	today := utils.Today()
	metrics := []db_models.Metric{
		{UserID: user.ID, Title: "Calories Burned", Value: "1,245", Subtitle: "of 2,000 goal", Trend: "+15%", Color: "#3D8A5A", RecordDate: today},
		{UserID: user.ID, Title: "Active Minutes", Value: "45", Subtitle: "of 60 goal", Trend: "+8%", Color: "#5CAD7A", RecordDate: today},
		{UserID: user.ID, Title: "Sleep Hours", Value: "7.5", Subtitle: "hours last night", Trend: "+5%", Color: "#3D8A5A", RecordDate: today},
		{UserID: user.ID, Title: "Water Intake", Value: "1.5L", Subtitle: "of 2L goal", Trend: "-10%", Color: "#F5A623", RecordDate: today},
	}
	return db.Create(&metrics).Error
}

func createGoals(db *gorm.DB, user *db_models.User) error {
	now := time.Now()
	goals := []db_models.Goal{
		{UserID: user.ID, Title: "Weekly Exercise", Current: 5.2, Target: 7.0, Unit: "hours",
			Deadline: datatypes.Date(now.AddDate(0, 0, 7)), Achieved: false, Active: true},
		{UserID: user.ID, Title: "Monthly Steps", Current: 180000.0, Target: 300000.0, Unit: "steps",
			Deadline: datatypes.Date(now.AddDate(0, 1, 0)), Achieved: false, Active: true},
	}
	return db.Create(&goals).Error
}

func createNotifications(db *gorm.DB, user *db_models.User) error {
	now := time.Now().Unix()
	notifications := []db_models.Notification{
		{UserID: user.ID, Title: "Achievement Unlocked!", Message: "You've completed 7 days of meditation streak!",
			Type: db_models.NotificationAchievement, Read: false},
		{UserID: user.ID, Title: "Daily Reminder", Message: "Don't forget to log your water intake today.",
			Type: db_models.NotificationReminder, Read: false},
		{UserID: user.ID, Title: "Progress Update", Message: "You're 80% towards your weekly goal!",
			Type: db_models.NotificationUpdate, Read: true},
		{UserID: user.ID, Title: "Welcome", Message: "Thanks for joining Wellness! Let's start your journey.",
			Type: db_models.NotificationUpdate, Read: true},
	}
	offsets := []int64{3600, 2 * 3600, 24 * 3600, 48 * 3600}
	for i := range notifications {
		notifications[i].CreatedAt = now - offsets[i]
	}
	return db.Create(&notifications).Error
}

func createAchievements(db *gorm.DB, user *db_models.User) error {
	now := time.Now().Unix()
	achievements := []db_models.Achievement{
		{UserID: user.ID, Title: "7-Day Streak", Description: "Completed habits for 7 consecutive days",
			Icon: "🔥", Unlocked: true, UnlockedAt: now - 24*3600},
		{UserID: user.ID, Title: "Early Bird", Description: "Completed morning meditation for 14 days",
			Icon: "🌅", Unlocked: true, UnlockedAt: now - 3*24*3600},
		{UserID: user.ID, Title: "Marathon Reader", Description: "Read for 21 consecutive days",
			Icon: "📖", Unlocked: true, UnlockedAt: now},
	}
	return db.Create(&achievements).Error
}

// createLastWeekProgress stores one completed history week so the stored
// weekly schema has data to read once the dashboard goes historical.
func createLastWeekProgress(weeklyRepo repositories.WeeklyProgressRepository, user *db_models.User) error {
	weekStart := services.StartOfWeek(time.Now()).AddDate(0, 0, -7)
	dayNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	progress := &db_models.WeeklyProgress{
		UserID:        user.ID,
		WeekStartDate: datatypes.Date(weekStart),
	}
	for i, name := range dayNames {
		completed := i%3 != 2
		value := 0.0
		if completed {
			value = 1.0
		}
		progress.Days = append(progress.Days, db_models.DayProgress{
			Date:      datatypes.Date(weekStart.AddDate(0, 0, i)),
			Day:       name,
			Value:     value,
			Completed: completed,
		})
	}

	return weeklyRepo.Insert(context.Background(), progress)
}
