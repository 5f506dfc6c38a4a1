package response_models

type MediaResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	TripID       string `json:"trip_id,omitempty"`
	PublicURL    string `json:"public_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mime_type"`
	SizeBytes    int64  `json:"size_bytes"`
	IsFavorite   bool   `json:"is_favorite"`
	CreatedAt    int64  `json:"created_at"`
}

type MediaPageResponse struct {
	Items []MediaResponse `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Pages int             `json:"pages"`
}

type MediaURLListResponse struct {
	TripID string   `json:"trip_id"`
	URLs   []string `json:"urls"`
}
