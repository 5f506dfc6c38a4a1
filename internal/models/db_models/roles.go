package db_models

// TripRole is the role vocabulary shared by photo trips and expense trips.
// The set is flat: admin-only actions check equality, there is no ordering.
type TripRole string

const (
	TripRoleAdmin  TripRole = "admin"
	TripRoleMember TripRole = "member"
)

func (r TripRole) IsAdmin() bool {
	return r == TripRoleAdmin
}

// ItineraryRole is the itinerary-trip role vocabulary. Owner implicitly
// satisfies any requirement; every other role satisfies only an exact match.
// This is deliberately not a numeric ordering: a role added later does not
// inherit any privilege it was not explicitly given.
type ItineraryRole string

const (
	ItineraryRoleOwner  ItineraryRole = "owner"
	ItineraryRoleEditor ItineraryRole = "editor"
	ItineraryRoleViewer ItineraryRole = "viewer"
)

func (r ItineraryRole) Satisfies(required ItineraryRole) bool {
	if r == ItineraryRoleOwner {
		return true
	}
	return r == required
}
