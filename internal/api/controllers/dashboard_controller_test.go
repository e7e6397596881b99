package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness/internal/models/response_models"
	"wellness/pkg/utils"
)

func dashboardRouter(svc *fakeDashboardService) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard", NewDashboardController(svc).GetDashboard)
	return r
}

func TestGetDashboardEndpoint(t *testing.T) {
	svc := &fakeDashboardService{resp: &response_models.DashboardResponse{
		User:    response_models.UserResponse{Name: "Sarah"},
		Metrics: []response_models.MetricResponse{{Title: "Calories Burned", Value: "1,245"}},
		Habits:  []response_models.HabitResponse{{Name: "Drink Water", Completed: true, Streak: 14}},
		WeeklyProgress: response_models.WeeklyProgressResponse{
			Days: []response_models.DayProgressResponse{{Day: "Mon", Value: 1.0, Completed: true}},
		},
	}}
	r := dashboardRouter(svc)

	w := performRequest(t, r, http.MethodGet, "/dashboard?userId="+uuid.NewString(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp response_models.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sarah", resp.User.Name)
	require.Len(t, resp.Habits, 1)
	assert.Equal(t, 14, resp.Habits[0].Streak)
	require.Len(t, resp.WeeklyProgress.Days, 1)
	assert.Equal(t, "Mon", resp.WeeklyProgress.Days[0].Day)
}

func TestGetDashboardEndpointUserNotFound(t *testing.T) {
	r := dashboardRouter(&fakeDashboardService{err: utils.ErrUserNotFound})

	w := performRequest(t, r, http.MethodGet, "/dashboard?userId="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Not Found", resp.Error)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestGetDashboardEndpointMissingUserID(t *testing.T) {
	r := dashboardRouter(&fakeDashboardService{})

	w := performRequest(t, r, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Validation Failed", resp.Error)
}

func TestGetDashboardEndpointUnexpectedError(t *testing.T) {
	r := dashboardRouter(&fakeDashboardService{err: assert.AnError})

	w := performRequest(t, r, http.MethodGet, "/dashboard?userId="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Internal Server Error", resp.Error)
	assert.Equal(t, "An unexpected error occurred", resp.Message)
}
