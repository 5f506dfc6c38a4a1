package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

// StorageService is the gateway to the media bucket. Delete operations are
// best-effort: callers log failures and never fail the request over them.
type StorageService interface {
	Upload(ctx context.Context, content io.Reader, userId string, tripId string, filename string, contentType string) (gcsPath string, publicURL string, err error)
	Delete(ctx context.Context, gcsPath string) error
	Download(ctx context.Context, gcsPath string) (io.ReadCloser, error)
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	UserPrefix(userId string) string
	TripPrefix(userId string, tripId string) string
}

type gcsStorageService struct {
	client *storage.Client
	bucket string
}

func NewGCSStorageService(client *storage.Client) StorageService {
	bucket := os.Getenv("GCS_BUCKET_NAME")
	if bucket == "" {
		bucket = "tripify-media"
	}
	return &gcsStorageService{client: client, bucket: bucket}
}

// Path layout: users/user_{uid}/trips/{trip_{tid}|personal}/{photo|video}_{uuid}_original{ext}
func (s *gcsStorageService) buildBlobPath(userId, tripId, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	mediaType := "photo"
	switch ext {
	case ".mp4", ".mov", ".avi", ".webm":
		mediaType = "video"
	}

	folder := "personal"
	if tripId != "" {
		folder = "trip_" + tripId
	}

	return fmt.Sprintf("users/user_%s/trips/%s/%s_%s_original%s",
		userId, folder, mediaType, uuid.New().String(), ext)
}

func (s *gcsStorageService) UserPrefix(userId string) string {
	return fmt.Sprintf("users/user_%s/", userId)
}

func (s *gcsStorageService) TripPrefix(userId string, tripId string) string {
	return fmt.Sprintf("users/user_%s/trips/trip_%s/", userId, tripId)
}

func (s *gcsStorageService) Upload(ctx context.Context, content io.Reader, userId string, tripId string, filename string, contentType string) (string, string, error) {
	blobPath := s.buildBlobPath(userId, tripId, filename)

	w := s.client.Bucket(s.bucket).Object(blobPath).NewWriter(ctx)
	w.ContentType = contentType
	w.PredefinedACL = "publicRead"

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return "", "", err
	}
	if err := w.Close(); err != nil {
		return "", "", err
	}

	publicURL := fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, blobPath)
	return blobPath, publicURL, nil
}

func (s *gcsStorageService) Delete(ctx context.Context, gcsPath string) error {
	return s.client.Bucket(s.bucket).Object(gcsPath).Delete(ctx)
}

func (s *gcsStorageService) Download(ctx context.Context, gcsPath string) (io.ReadCloser, error) {
	return s.client.Bucket(s.bucket).Object(gcsPath).NewReader(ctx)
}

func (s *gcsStorageService) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	deleted := 0
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, err
		}
		if err := s.client.Bucket(s.bucket).Object(attrs.Name).Delete(ctx); err != nil {
			log.Printf("Error deleting blob %s: %v", attrs.Name, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}
