package db_models

import "github.com/google/uuid"

// Media is a photo or video stored in the blob bucket. TripID is nil for
// personal (non-trip) uploads.
type Media struct {
	BaseModel
	UserID uuid.UUID  `gorm:"type:uuid;not null"`
	TripID *uuid.UUID `gorm:"type:uuid"`

	GCSPath      string `gorm:"not null"`
	PublicURL    string `gorm:"not null"`
	ThumbnailURL string

	Filename  string `gorm:"not null"`
	MimeType  string `gorm:"not null"`
	SizeBytes int64  `gorm:"not null"`

	// Global flag, visible through the owner's favorites listing. Whether
	// favorites should be per-user is an open product question.
	IsFavorite bool `gorm:"default:false"`
}
