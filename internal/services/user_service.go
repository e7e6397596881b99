package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wellness/internal/models/db_models"
	"wellness/internal/models/request_models"
	"wellness/internal/models/response_models"
	"wellness/internal/repositories"
	"wellness/pkg/utils"
)

type UserServiceInterface interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, request request_models.PreferencesRequest) (*response_models.UserResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

// UpdatePreferences replaces the embedded preferences wholesale; no field
// from the previous value survives.
func (s *UserService) UpdatePreferences(ctx context.Context, userID uuid.UUID, request request_models.PreferencesRequest) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	user.Preferences = db_models.Preferences{
		NotificationsEnabled: *request.NotificationsEnabled,
		DarkMode:             *request.DarkMode,
		Language:             request.Language,
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("Updated preferences for user %s", userID)

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}
