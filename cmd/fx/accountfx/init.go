package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripify/internal/api/controllers"
	"tripify/internal/repositories"
	"tripify/internal/services"
)

var Module = fx.Provide(
	provideUserRepo,
	provideAuthService, provideUserService,
	provideAuthController, provideUserController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}

func provideUserService(userRepo repositories.UserRepository, storage services.StorageService) services.UserServiceInterface {
	return services.NewUserService(userRepo, storage)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
