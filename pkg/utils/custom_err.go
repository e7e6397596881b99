package utils

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrResetTokenInvalid    = errors.New("invalid or expired reset token")
)
