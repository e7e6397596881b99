package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"wellness/internal/models/db_models"
	"wellness/internal/models/request_models"
	"wellness/internal/models/response_models"
	"wellness/internal/repositories"
	"wellness/pkg/memcache"
	"wellness/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
	Logout(ctx context.Context, userID uuid.UUID) error
}

type AuthService struct {
	userRepo            repositories.UserRepository
	notificationService NotificationServiceInterface
	mailService         MailServiceInterface
	resetTokens         memcache.ResetTokenStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	notificationService NotificationServiceInterface,
	mailService MailServiceInterface,
	resetTokens memcache.ResetTokenStore,
) AuthServiceInterface {
	return &AuthService{
		userRepo:            userRepo,
		notificationService: notificationService,
		mailService:         mailService,
		resetTokens:         resetTokens,
	}
}

func (s *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	now := time.Now().Unix()
	user.LastLoginAt = now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.CreateAccessToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.CreateRefreshToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	// First-session check carried over from the mobile release: a login in
	// the same second as signup counts as the first one. The second branch
	// only fires on clock skew.
	if user.CreatedAt == user.LastLoginAt || user.LastLoginAt-24*3600 > now {
		if err := s.notificationService.CreateWelcomeNotification(ctx, user); err != nil {
			log.Printf("Failed to create welcome notification for %s: %v", user.Email, err)
		}
	}

	log.Printf("Login successful for user: %s", user.Email)

	return &response_models.LoginResponse{
		User:         response_models.NewUserResponse(user),
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// ForgotPassword records an ALERT notification for the account and, when
// SMTP is configured, mails a single-use reset link. The notification acts
// as the in-app stand-in for the email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	_, err = s.notificationService.CreateNotification(ctx, user,
		"Password Reset",
		"A password reset was requested for your account. If this wasn't you, please contact support.",
		db_models.NotificationAlert)
	if err != nil {
		return err
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	s.resetTokens.Set(token, user.Email, resetTokenTTL)

	if err := s.mailService.SendPasswordResetMail(user.Email, token); err != nil {
		// Mail failures stay server-side; the client always gets 204.
		log.Printf("Failed to send password reset mail to %s: %v", user.Email, err)
	}

	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := s.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrResetTokenInvalid
	}

	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed

	return s.userRepo.Update(ctx, user)
}

// Logout is a no-op in the stateless token scheme; the client drops its
// tokens.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	log.Printf("User logged out: %s", userID)
	return nil
}
