package db_models

import "testing"

func TestTripRoleIsAdmin(t *testing.T) {
	if !TripRoleAdmin.IsAdmin() {
		t.Fatal("admin should be admin")
	}
	if TripRoleMember.IsAdmin() {
		t.Fatal("member should not be admin")
	}
	if TripRole("superadmin").IsAdmin() {
		t.Fatal("unknown role should not be admin")
	}
}

func TestItineraryRoleSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     ItineraryRole
		required ItineraryRole
		want     bool
	}{
		{name: "owner satisfies owner", role: ItineraryRoleOwner, required: ItineraryRoleOwner, want: true},
		{name: "owner satisfies editor", role: ItineraryRoleOwner, required: ItineraryRoleEditor, want: true},
		{name: "owner satisfies viewer", role: ItineraryRoleOwner, required: ItineraryRoleViewer, want: true},
		{name: "editor satisfies editor", role: ItineraryRoleEditor, required: ItineraryRoleEditor, want: true},
		{name: "editor does not satisfy owner", role: ItineraryRoleEditor, required: ItineraryRoleOwner, want: false},
		{name: "editor does not satisfy viewer", role: ItineraryRoleEditor, required: ItineraryRoleViewer, want: false},
		{name: "viewer satisfies viewer", role: ItineraryRoleViewer, required: ItineraryRoleViewer, want: true},
		{name: "viewer does not satisfy editor", role: ItineraryRoleViewer, required: ItineraryRoleEditor, want: false},
		{name: "viewer does not satisfy owner", role: ItineraryRoleViewer, required: ItineraryRoleOwner, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Satisfies(tt.required); got != tt.want {
				t.Fatalf("%s.Satisfies(%s) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}
