package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wellness/internal/models/db_models"
	"wellness/internal/models/request_models"
	"wellness/internal/models/response_models"
	"wellness/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

type fakeAuthService struct {
	loginResp *response_models.LoginResponse
	err       error
}

func (s *fakeAuthService) Login(_ context.Context, _ request_models.LoginRequest) (*response_models.LoginResponse, error) {
	return s.loginResp, s.err
}

func (s *fakeAuthService) ForgotPassword(_ context.Context, _ string) error {
	return s.err
}

func (s *fakeAuthService) ResetPassword(_ context.Context, _ request_models.ResetPasswordRequest) error {
	return s.err
}

func (s *fakeAuthService) Logout(_ context.Context, _ uuid.UUID) error {
	return s.err
}

type fakeDashboardService struct {
	resp *response_models.DashboardResponse
	err  error
}

func (s *fakeDashboardService) GetDashboard(_ context.Context, _ uuid.UUID) (*response_models.DashboardResponse, error) {
	return s.resp, s.err
}

type fakeNotificationService struct {
	groups []response_models.NotificationGroupResponse
	err    error

	markedRead    []uuid.UUID
	markedAllRead []uuid.UUID
}

func (s *fakeNotificationService) GetNotifications(_ context.Context, _ uuid.UUID) ([]response_models.NotificationGroupResponse, error) {
	return s.groups, s.err
}

func (s *fakeNotificationService) MarkAsRead(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.markedRead = append(s.markedRead, id)
	return nil
}

func (s *fakeNotificationService) MarkAllAsRead(_ context.Context, userID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.markedAllRead = append(s.markedAllRead, userID)
	return nil
}

func (s *fakeNotificationService) CountUnread(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, s.err
}

func (s *fakeNotificationService) CreateNotification(_ context.Context, _ *db_models.User, _, _ string, _ db_models.NotificationType) (*db_models.Notification, error) {
	return nil, s.err
}

func (s *fakeNotificationService) CreateWelcomeNotification(_ context.Context, _ *db_models.User) error {
	return s.err
}

func (s *fakeNotificationService) CreateAchievementNotification(_ context.Context, _ *db_models.User, _ string) error {
	return s.err
}

type fakeStatsService struct {
	resp *response_models.StatsResponse
	err  error
}

func (s *fakeStatsService) GetStats(_ context.Context, _ uuid.UUID, _ string) (*response_models.StatsResponse, error) {
	return s.resp, s.err
}

type fakeUserService struct {
	resp *response_models.UserResponse
	err  error
}

func (s *fakeUserService) GetUserProfile(_ context.Context, _ uuid.UUID) (*response_models.UserResponse, error) {
	return s.resp, s.err
}

func (s *fakeUserService) UpdatePreferences(_ context.Context, _ uuid.UUID, _ request_models.PreferencesRequest) (*response_models.UserResponse, error) {
	return s.resp, s.err
}
