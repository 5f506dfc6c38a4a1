package services

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/internal/models/response_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

type MediaDownload struct {
	Content  io.ReadCloser
	Filename string
	MimeType string
}

type MediaServiceInterface interface {
	Upload(ctx context.Context, userId uuid.UUID, tripId *uuid.UUID, content io.Reader, filename, contentType string, sizeBytes int64) (*response_models.MediaResponse, error)
	ListTripMedia(ctx context.Context, tripId, userId uuid.UUID, page, pageSize int) (*response_models.MediaPageResponse, error)
	ListPersonal(ctx context.Context, userId uuid.UUID) ([]response_models.MediaResponse, error)
	ListFavorites(ctx context.Context, userId uuid.UUID) ([]response_models.MediaResponse, error)
	Update(ctx context.Context, mediaId, userId uuid.UUID, request request_models.UpdateMediaRequest) (*response_models.MediaResponse, error)
	Delete(ctx context.Context, mediaId, userId uuid.UUID) error
	Download(ctx context.Context, mediaId, userId uuid.UUID) (*MediaDownload, error)
	ListTripMediaURLs(ctx context.Context, tripId, userId uuid.UUID) (*response_models.MediaURLListResponse, error)
}

type MediaService struct {
	mediaRepo  repositories.MediaRepository
	tripRepo   repositories.TripRepository
	membership MembershipService
	storage    StorageService
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	tripRepo repositories.TripRepository,
	membership MembershipService,
	storage StorageService) MediaServiceInterface {
	return &MediaService{
		mediaRepo:  mediaRepo,
		tripRepo:   tripRepo,
		membership: membership,
		storage:    storage,
	}
}

func toMediaResponse(media *db_models.Media) *response_models.MediaResponse {
	resp := &response_models.MediaResponse{
		ID:           media.ID.String(),
		UserID:       media.UserID.String(),
		PublicURL:    media.PublicURL,
		ThumbnailURL: media.ThumbnailURL,
		Filename:     media.Filename,
		MimeType:     media.MimeType,
		SizeBytes:    media.SizeBytes,
		IsFavorite:   media.IsFavorite,
		CreatedAt:    media.CreatedAt,
	}
	if media.TripID != nil {
		resp.TripID = media.TripID.String()
	}
	return resp
}

func toMediaResponses(items []db_models.Media) []response_models.MediaResponse {
	responses := make([]response_models.MediaResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toMediaResponse(&items[i]))
	}
	return responses
}

// pageCount is ceil(total/limit) for a positive limit.
func pageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func (m *MediaService) Upload(ctx context.Context, userId uuid.UUID, tripId *uuid.UUID, content io.Reader, filename, contentType string, sizeBytes int64) (*response_models.MediaResponse, error) {
	tripFolder := ""
	if tripId != nil {
		if _, err := m.membership.RequireTripMember(ctx, *tripId, userId); err != nil {
			return nil, err
		}
		tripFolder = tripId.String()
	}

	gcsPath, publicURL, err := m.storage.Upload(ctx, content, userId.String(), tripFolder, filename, contentType)
	if err != nil {
		log.Printf("Error uploading %s: %v", filename, err)
		return nil, utils.ErrStorageUpload
	}

	media := &db_models.Media{
		UserID:    userId,
		TripID:    tripId,
		GCSPath:   gcsPath,
		PublicURL: publicURL,
		Filename:  filename,
		MimeType:  contentType,
		SizeBytes: sizeBytes,
	}
	if err := m.mediaRepo.Create(ctx, media); err != nil {
		// The row failed but the blob landed; clean it up best-effort.
		if delErr := m.storage.Delete(ctx, gcsPath); delErr != nil {
			log.Printf("Error deleting orphaned blob %s: %v", gcsPath, delErr)
		}
		return nil, utils.ErrDatabaseError
	}

	// The first photo of a trip becomes its cover.
	if tripId != nil {
		trip, err := m.tripRepo.FindByID(ctx, *tripId)
		if err == nil && trip != nil && trip.CoverPhotoURL == "" {
			if err := m.tripRepo.UpdateCoverPhoto(ctx, *tripId, publicURL); err != nil {
				log.Printf("Error setting cover photo for trip %s: %v", tripId, err)
			}
		}
	}

	return toMediaResponse(media), nil
}

func (m *MediaService) ListTripMedia(ctx context.Context, tripId, userId uuid.UUID, page, pageSize int) (*response_models.MediaPageResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	if _, err := m.membership.RequireTripMember(ctx, tripId, userId); err != nil {
		return nil, err
	}

	items, total, err := m.mediaRepo.ListByTripPaged(ctx, tripId, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.MediaPageResponse{
		Items: toMediaResponses(items),
		Total: total,
		Page:  page,
		Pages: pageCount(total, pageSize),
	}, nil
}

func (m *MediaService) ListPersonal(ctx context.Context, userId uuid.UUID) ([]response_models.MediaResponse, error) {
	items, err := m.mediaRepo.ListPersonal(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toMediaResponses(items), nil
}

func (m *MediaService) ListFavorites(ctx context.Context, userId uuid.UUID) ([]response_models.MediaResponse, error) {
	items, err := m.mediaRepo.ListFavorites(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toMediaResponses(items), nil
}

func (m *MediaService) requireOwner(ctx context.Context, mediaId, userId uuid.UUID) (*db_models.Media, error) {
	media, err := m.mediaRepo.FindByID(ctx, mediaId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if media == nil {
		return nil, utils.ErrMediaNotFound
	}
	if media.UserID != userId {
		return nil, utils.ErrNotResourceOwner
	}
	return media, nil
}

func (m *MediaService) Update(ctx context.Context, mediaId, userId uuid.UUID, request request_models.UpdateMediaRequest) (*response_models.MediaResponse, error) {
	media, err := m.requireOwner(ctx, mediaId, userId)
	if err != nil {
		return nil, err
	}

	if request.IsFavorite != nil {
		media.IsFavorite = *request.IsFavorite
	}
	if request.TripID != nil {
		// Reassignment requires membership in the target trip.
		if _, err := m.membership.RequireTripMember(ctx, *request.TripID, userId); err != nil {
			return nil, err
		}
		media.TripID = request.TripID
	}

	if err := m.mediaRepo.Update(ctx, media); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toMediaResponse(media), nil
}

func (m *MediaService) Delete(ctx context.Context, mediaId, userId uuid.UUID) error {
	media, err := m.requireOwner(ctx, mediaId, userId)
	if err != nil {
		return err
	}

	if err := m.mediaRepo.Delete(ctx, media.ID); err != nil {
		return utils.ErrDatabaseError
	}

	if media.TripID != nil {
		m.reassignCover(ctx, *media.TripID, media.PublicURL)
	}

	if err := m.storage.Delete(ctx, media.GCSPath); err != nil {
		log.Printf("Error deleting blob %s: %v", media.GCSPath, err)
	}
	return nil
}

// reassignCover moves a trip's cover to the newest remaining media when the
// deleted item was the cover, or clears it when none remain. Failures only
// leave a stale cover URL, so they are logged rather than returned.
func (m *MediaService) reassignCover(ctx context.Context, tripId uuid.UUID, deletedURL string) {
	trip, err := m.tripRepo.FindByID(ctx, tripId)
	if err != nil || trip == nil || trip.CoverPhotoURL != deletedURL {
		return
	}

	remaining, err := m.mediaRepo.ListByTrip(ctx, tripId)
	if err != nil {
		log.Printf("Error listing media for cover reassignment on trip %s: %v", tripId, err)
		return
	}

	next := ""
	if len(remaining) > 0 {
		// ListByTrip returns newest first.
		next = remaining[0].PublicURL
	}
	if err := m.tripRepo.UpdateCoverPhoto(ctx, tripId, next); err != nil {
		log.Printf("Error reassigning cover for trip %s: %v", tripId, err)
	}
}

func (m *MediaService) Download(ctx context.Context, mediaId, userId uuid.UUID) (*MediaDownload, error) {
	media, err := m.mediaRepo.FindByID(ctx, mediaId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if media == nil {
		return nil, utils.ErrMediaNotFound
	}

	// Visible to the uploader, or to members of the trip it belongs to.
	if media.UserID != userId {
		if media.TripID == nil {
			return nil, utils.ErrNotResourceOwner
		}
		if _, err := m.membership.RequireTripMember(ctx, *media.TripID, userId); err != nil {
			return nil, err
		}
	}

	content, err := m.storage.Download(ctx, media.GCSPath)
	if err != nil {
		log.Printf("Error streaming blob %s: %v", media.GCSPath, err)
		return nil, utils.ErrStorageUpload
	}

	return &MediaDownload{
		Content:  content,
		Filename: media.Filename,
		MimeType: media.MimeType,
	}, nil
}

// ListTripMediaURLs backs the download-all endpoint. It returns the public
// URLs rather than an archive; zipping server-side is still unimplemented.
func (m *MediaService) ListTripMediaURLs(ctx context.Context, tripId, userId uuid.UUID) (*response_models.MediaURLListResponse, error) {
	if _, err := m.membership.RequireTripMember(ctx, tripId, userId); err != nil {
		return nil, err
	}

	items, err := m.mediaRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	urls := make([]string, 0, len(items))
	for _, item := range items {
		urls = append(urls, item.PublicURL)
	}
	return &response_models.MediaURLListResponse{
		TripID: tripId.String(),
		URLs:   urls,
	}, nil
}
