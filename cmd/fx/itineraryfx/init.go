package itineraryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripify/internal/api/controllers"
	"tripify/internal/repositories"
	"tripify/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService, provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	membership services.MembershipService,
	storage services.StorageService) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, membership, storage)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
