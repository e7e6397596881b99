package response_models

import (
	"wellness/internal/models/db_models"
	"wellness/pkg/utils"
)

type PreferencesResponse struct {
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	DarkMode             bool   `json:"darkMode"`
	Language             string `json:"language"`
}

type UserResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	Avatar      string              `json:"avatar,omitempty"`
	CreatedAt   string              `json:"createdAt"`
	Preferences PreferencesResponse `json:"preferences"`
}

func NewUserResponse(u *db_models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.Avatar,
		CreatedAt: utils.FormatTimestamp(u.CreatedAt),
		Preferences: PreferencesResponse{
			NotificationsEnabled: u.Preferences.NotificationsEnabled,
			DarkMode:             u.Preferences.DarkMode,
			Language:             u.Preferences.Language,
		},
	}
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}
