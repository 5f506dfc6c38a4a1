package infra

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// InitGCSClient builds the one storage client shared for the process
// lifetime. Credentials come from the service-account key file when present,
// otherwise application-default credentials.
func InitGCSClient(ctx context.Context) *storage.Client {

	keyPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

	var opts []option.ClientOption
	if keyPath != "" {
		if _, err := os.Stat(keyPath); err == nil {
			opts = append(opts, option.WithCredentialsFile(keyPath))
		} else {
			log.Printf("Service account key not found at %s, using default credentials", keyPath)
		}
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		log.Fatalf("Error creating storage client: %v", err)
	}

	return client
}
