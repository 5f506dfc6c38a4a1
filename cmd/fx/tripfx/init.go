package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripify/internal/api/controllers"
	"tripify/internal/repositories"
	"tripify/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	mediaRepo repositories.MediaRepository,
	membership services.MembershipService,
	storage services.StorageService) services.TripServiceInterface {
	return services.NewTripService(tripRepo, mediaRepo, membership, storage)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
