package membershipfx

import (
	"go.uber.org/fx"
	"tripify/internal/repositories"
	"tripify/internal/services"
)

var Module = fx.Provide(
	provideMembershipService)

func provideMembershipService(
	tripRepo repositories.TripRepository,
	expenseTripRepo repositories.ExpenseTripRepository,
	itineraryRepo repositories.ItineraryRepository) services.MembershipService {
	return services.NewMembershipService(tripRepo, expenseTripRepo, itineraryRepo)
}
