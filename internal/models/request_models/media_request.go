package request_models

import "github.com/google/uuid"

type UpdateMediaRequest struct {
	IsFavorite *bool      `json:"is_favorite,omitempty"`
	TripID     *uuid.UUID `json:"trip_id,omitempty"`
}
