package request_models

type CreateTripRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	CoverPhotoURL string `json:"cover_photo_url"`
}

type JoinTripRequest struct {
	Code string `json:"code" binding:"required"`
}
