package response_models

import (
	"time"

	"wellness/internal/models/db_models"
	"wellness/pkg/utils"
)

type WeeklyStatResponse struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Target float64 `json:"target"`
}

type AchievementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	UnlockedAt  string `json:"unlockedAt,omitempty"`
}

type GoalResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit,omitempty"`
	Deadline string  `json:"deadline"`
}

type StatsResponse struct {
	Overview     []MetricResponse      `json:"overview"`
	WeeklyStats  []WeeklyStatResponse  `json:"weeklyStats"`
	Achievements []AchievementResponse `json:"achievements"`
	Goals        []GoalResponse        `json:"goals"`
}

func NewAchievementResponses(achievements []db_models.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(achievements))
	for i := range achievements {
		a := &achievements[i]
		out = append(out, AchievementResponse{
			ID:          a.ID.String(),
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			UnlockedAt:  utils.FormatTimestamp(a.UnlockedAt),
		})
	}
	return out
}

func NewGoalResponses(goals []db_models.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		g := &goals[i]
		out = append(out, GoalResponse{
			ID:       g.ID.String(),
			Title:    g.Title,
			Current:  g.Current,
			Target:   g.Target,
			Unit:     g.Unit,
			Deadline: utils.FormatDate(time.Time(g.Deadline)),
		})
	}
	return out
}
