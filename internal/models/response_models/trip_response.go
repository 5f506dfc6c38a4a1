package response_models

import "time"

type TripMemberResponse struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type TripResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	CoverPhotoURL string               `json:"cover_photo_url,omitempty"`
	JoinCode      string               `json:"join_code"`
	CreatedBy     string               `json:"created_by"`
	CreatedAt     int64                `json:"created_at"`
	Members       []TripMemberResponse `json:"members,omitempty"`
}
