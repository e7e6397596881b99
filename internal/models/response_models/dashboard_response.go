package response_models

import "wellness/internal/models/db_models"

type MetricResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
	Trend    string `json:"trend,omitempty"`
	Color    string `json:"color,omitempty"`
}

type HabitResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
}

type DayProgressResponse struct {
	Day       string  `json:"day"`
	Value     float64 `json:"value"`
	Completed bool    `json:"completed"`
}

type WeeklyProgressResponse struct {
	Days []DayProgressResponse `json:"days"`
}

type DashboardResponse struct {
	User           UserResponse           `json:"user"`
	Metrics        []MetricResponse       `json:"metrics"`
	Habits         []HabitResponse        `json:"habits"`
	WeeklyProgress WeeklyProgressResponse `json:"weeklyProgress"`
}

func NewMetricResponses(metrics []db_models.Metric) []MetricResponse {
	out := make([]MetricResponse, 0, len(metrics))
	for i := range metrics {
		m := &metrics[i]
		out = append(out, MetricResponse{
			ID:       m.ID.String(),
			Title:    m.Title,
			Value:    m.Value,
			Subtitle: m.Subtitle,
			Trend:    m.Trend,
			Color:    m.Color,
		})
	}
	return out
}

func NewHabitResponses(habits []db_models.Habit) []HabitResponse {
	out := make([]HabitResponse, 0, len(habits))
	for i := range habits {
		h := &habits[i]
		out = append(out, HabitResponse{
			ID:        h.ID.String(),
			Name:      h.Name,
			Icon:      h.Icon,
			Completed: h.Completed,
			Streak:    h.Streak,
		})
	}
	return out
}
