package request_models

import "github.com/google/uuid"

type CreateItineraryTripRequest struct {
	Name          string `json:"name" binding:"required"`
	Destination   string `json:"destination"`
	StartDate     string `json:"start_date" binding:"required"` // YYYY-MM-DD, slashes accepted
	EndDate       string `json:"end_date" binding:"required"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
}

type UpdateItineraryTripRequest struct {
	Name          *string `json:"name,omitempty"`
	Destination   *string `json:"destination,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Description   *string `json:"description,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
}

type JoinItineraryTripRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
}

type CreateDayRequest struct {
	DayNumber int    `json:"day_number" binding:"required,min=1"`
	Date      string `json:"date" binding:"required"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
}

type UpdateDayRequest struct {
	Date  *string `json:"date,omitempty"`
	Title *string `json:"title,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type CreateActivityRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	ActivityType string     `json:"activity_type"`
	StartTime    *string    `json:"start_time,omitempty"`
	EndTime      *string    `json:"end_time,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Location     string     `json:"location"`
	LocationLat  *float64   `json:"location_lat,omitempty"`
	LocationLng  *float64   `json:"location_lng,omitempty"`
	MapsLink     string     `json:"maps_link"`
	Cost         *float64   `json:"cost,omitempty"`
	Currency     string     `json:"currency"`
	BookingURL   string     `json:"booking_url"`
	Notes        string     `json:"notes"`
	AssignedTo   *uuid.UUID `json:"assigned_to,omitempty"`
	OrderIndex   int        `json:"order_index"`
}

type UpdateActivityRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ActivityType *string    `json:"activity_type,omitempty"`
	StartTime    *string    `json:"start_time,omitempty"`
	EndTime      *string    `json:"end_time,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Location     *string    `json:"location,omitempty"`
	LocationLat  *float64   `json:"location_lat,omitempty"`
	LocationLng  *float64   `json:"location_lng,omitempty"`
	MapsLink     *string    `json:"maps_link,omitempty"`
	Cost         *float64   `json:"cost,omitempty"`
	Currency     *string    `json:"currency,omitempty"`
	BookingURL   *string    `json:"booking_url,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	AssignedTo   *uuid.UUID `json:"assigned_to,omitempty"`
	OrderIndex   *int       `json:"order_index,omitempty"`
	IsCompleted  *bool      `json:"is_completed,omitempty"`
}

type CreatePackingItemRequest struct {
	Item     string `json:"item" binding:"required"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}
