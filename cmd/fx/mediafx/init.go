package mediafx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripify/internal/api/controllers"
	"tripify/internal/repositories"
	"tripify/internal/services"
)

var Module = fx.Provide(
	provideMediaRepo, provideMediaService, provideMediaController)

func provideMediaRepo(db *gorm.DB) repositories.MediaRepository {
	return repositories.NewMediaRepository(db)
}

func provideMediaService(
	mediaRepo repositories.MediaRepository,
	tripRepo repositories.TripRepository,
	membership services.MembershipService,
	storage services.StorageService) services.MediaServiceInterface {
	return services.NewMediaService(mediaRepo, tripRepo, membership, storage)
}

func provideMediaController(mediaService services.MediaServiceInterface) *controllers.MediaController {
	return controllers.NewMediaController(mediaService)
}
