package auth_fx

import (
	"go.uber.org/fx"

	"wellness/internal/repositories"
	"wellness/internal/services"
	mem "wellness/pkg/memcache"
)

var Module = fx.Provide(provideAuthService)

func provideAuthService(
	userRepo repositories.UserRepository,
	notificationService services.NotificationServiceInterface,
	mailService services.MailServiceInterface,
	resetTokens mem.ResetTokenStore,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, notificationService, mailService, resetTokens)
}
