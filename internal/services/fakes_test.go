package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wellness/internal/models/db_models"
)

// In-memory repository fakes. They return copies so tests only observe
// state that went through Update/Insert.

type fakeUserRepo struct {
	users map[uuid.UUID]db_models.User
}

func newFakeUserRepo(users ...db_models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]db_models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindActiveByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Active {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u := r.users[id]
	u.Active = false
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeHabitRepo struct {
	habits []db_models.Habit
}

func (r *fakeHabitRepo) FindActiveByUserOrdered(_ context.Context, userID uuid.UUID) ([]db_models.Habit, error) {
	return r.activeFor(userID), nil
}

func (r *fakeHabitRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]db_models.Habit, error) {
	return r.activeFor(userID), nil
}

func (r *fakeHabitRepo) Insert(_ context.Context, habit *db_models.Habit) error {
	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}
	r.habits = append(r.habits, *habit)
	return nil
}

func (r *fakeHabitRepo) activeFor(userID uuid.UUID) []db_models.Habit {
	var out []db_models.Habit
	for _, h := range r.habits {
		if h.UserID == userID && h.Active {
			out = append(out, h)
		}
	}
	return out
}

type fakeMetricRepo struct {
	metrics []db_models.Metric
}

func (r *fakeMetricRepo) FindLatestByUser(_ context.Context, userID uuid.UUID) ([]db_models.Metric, error) {
	var out []db_models.Metric
	for _, m := range r.metrics {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMetricRepo) FindByUserAndDate(_ context.Context, userID uuid.UUID, recordDate string) ([]db_models.Metric, error) {
	var out []db_models.Metric
	for _, m := range r.metrics {
		if m.UserID == userID && m.RecordDate == recordDate {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMetricRepo) Insert(_ context.Context, metric *db_models.Metric) error {
	if metric.ID == uuid.Nil {
		metric.ID = uuid.New()
	}
	r.metrics = append(r.metrics, *metric)
	return nil
}

type fakeGoalRepo struct {
	goals []db_models.Goal
}

func (r *fakeGoalRepo) FindActiveByUserOrderByDeadline(_ context.Context, userID uuid.UUID) ([]db_models.Goal, error) {
	var out []db_models.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.Active {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Insert(_ context.Context, goal *db_models.Goal) error {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	r.goals = append(r.goals, *goal)
	return nil
}

type fakeAchievementRepo struct {
	achievements []db_models.Achievement
}

func (r *fakeAchievementRepo) FindByUserNewestUnlockFirst(_ context.Context, userID uuid.UUID) ([]db_models.Achievement, error) {
	var out []db_models.Achievement
	for _, a := range r.achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAchievementRepo) FindUnlockedByUser(_ context.Context, userID uuid.UUID) ([]db_models.Achievement, error) {
	var out []db_models.Achievement
	for _, a := range r.achievements {
		if a.UserID == userID && a.Unlocked {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAchievementRepo) Insert(_ context.Context, achievement *db_models.Achievement) error {
	if achievement.ID == uuid.Nil {
		achievement.ID = uuid.New()
	}
	r.achievements = append(r.achievements, *achievement)
	return nil
}

type fakeNotificationRepo struct {
	notifications []db_models.Notification
}

func (r *fakeNotificationRepo) FindByUserNewestFirst(_ context.Context, userID uuid.UUID) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt > out[i].CreatedAt {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) FindUnreadByUser(_ context.Context, userID uuid.UUID) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			n := n
			return &n, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) Insert(_ context.Context, notification *db_models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt == 0 {
		notification.CreatedAt = time.Now().Unix()
	}
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, notification *db_models.Notification) error {
	for i := range r.notifications {
		if r.notifications[i].ID == notification.ID {
			r.notifications[i] = *notification
			return nil
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].Read = true
		}
	}
	return nil
}

type sentMail struct {
	to    string
	token string
}

type fakeMailService struct {
	sent []sentMail
	err  error
}

func (m *fakeMailService) SendPasswordResetMail(to, token string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, token: token})
	return nil
}
