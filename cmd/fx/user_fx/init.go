package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellness/internal/repositories"
	"wellness/internal/services"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}
