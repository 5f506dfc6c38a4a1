package db_models

import (
	"time"

	"github.com/google/uuid"
)

type ItineraryTrip struct {
	BaseModel
	Name          string `gorm:"not null"`
	Destination   string
	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null"`
	Description   string
	CoverImageURL string
	JoinCode      string    `gorm:"size:6;uniqueIndex"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`

	Members      []ItineraryTripMember `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Days         []ItineraryDay        `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	PackingItems []ItineraryPackingItem `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

type ItineraryTripMember struct {
	TripID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Role     ItineraryRole `gorm:"size:20;default:editor"`
	JoinedAt time.Time     `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type ItineraryDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_trip_day_number"`
	DayNumber int       `gorm:"not null;uniqueIndex:uq_trip_day_number"`
	Date      time.Time `gorm:"type:date;not null"`
	Title     string
	Notes     string

	Activities []ItineraryActivity `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE"`
}

type ItineraryActivity struct {
	BaseModel
	DayID        uuid.UUID `gorm:"type:uuid;not null"`
	Title        string    `gorm:"size:255;not null"`
	Description  string
	ActivityType string `gorm:"size:50"` // sightseeing, food, transport, accommodation, shopping, entertainment, other
	StartTime    *string
	EndTime      *string
	Duration     *int // minutes
	Location     string
	LocationLat  *float64
	LocationLng  *float64
	MapsLink     string
	Cost         *float64 `gorm:"type:numeric(10,2)"`
	Currency     string   `gorm:"size:3;default:USD"`
	BookingURL   string
	Notes        string
	ImageURL     string
	AssignedTo   *uuid.UUID `gorm:"type:uuid"`
	OrderIndex   int        `gorm:"not null"`
	IsCompleted  bool       `gorm:"default:false"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid"`
}

type ItineraryPackingItem struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;not null"`
	Item     string    `gorm:"size:255;not null"`
	Category string    `gorm:"size:100"`
	IsPacked bool      `gorm:"default:false"`
	Quantity int       `gorm:"default:1"`
	Notes    string
	AddedBy  uuid.UUID `gorm:"type:uuid"`
}
