package response_models

type ItineraryTripResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Destination   string               `json:"destination,omitempty"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	Description   string               `json:"description,omitempty"`
	CoverImageURL string               `json:"cover_image_url,omitempty"`
	JoinCode      string               `json:"join_code"`
	CreatedBy     string               `json:"created_by"`
	CreatedAt     int64                `json:"created_at"`
	Members       []TripMemberResponse `json:"members,omitempty"`
}

type ItineraryDayResponse struct {
	ID         string                      `json:"id"`
	TripID     string                      `json:"trip_id"`
	DayNumber  int                         `json:"day_number"`
	Date       string                      `json:"date"`
	Title      string                      `json:"title,omitempty"`
	Notes      string                      `json:"notes,omitempty"`
	Activities []ItineraryActivityResponse `json:"activities,omitempty"`
}

type ItineraryActivityResponse struct {
	ID           string   `json:"id"`
	DayID        string   `json:"day_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	ActivityType string   `json:"activity_type,omitempty"`
	StartTime    *string  `json:"start_time,omitempty"`
	EndTime      *string  `json:"end_time,omitempty"`
	Duration     *int     `json:"duration,omitempty"`
	Location     string   `json:"location,omitempty"`
	LocationLat  *float64 `json:"location_lat,omitempty"`
	LocationLng  *float64 `json:"location_lng,omitempty"`
	MapsLink     string   `json:"maps_link,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	BookingURL   string   `json:"booking_url,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	AssignedTo   string   `json:"assigned_to,omitempty"`
	OrderIndex   int      `json:"order_index"`
	IsCompleted  bool     `json:"is_completed"`
}

type ItineraryPackingItemResponse struct {
	ID       string `json:"id"`
	TripID   string `json:"trip_id"`
	Item     string `json:"item"`
	Category string `json:"category,omitempty"`
	IsPacked bool   `json:"is_packed"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
	AddedBy  string `json:"added_by,omitempty"`
}
