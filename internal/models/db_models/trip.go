package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the shared photo-album trip. Membership is gained through the
// join code; the creator is always an admin member.
type Trip struct {
	BaseModel
	Name          string `gorm:"not null"`
	Description   string
	CoverPhotoURL string
	JoinCode      string    `gorm:"size:6;uniqueIndex"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`

	Members []TripMember `gorm:"constraint:OnDelete:CASCADE"`
	Media   []Media      `gorm:"constraint:OnDelete:CASCADE"`
}

type TripMember struct {
	TripID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role     TripRole  `gorm:"size:20;default:member"`
	JoinedAt time.Time `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
