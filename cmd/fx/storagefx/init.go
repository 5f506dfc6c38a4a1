package storagefx

import (
	"context"

	"cloud.google.com/go/storage"
	"go.uber.org/fx"
	"tripify/internal/infra"
	"tripify/internal/services"
)

var Module = fx.Provide(
	provideGCSClient, provideStorageService)

func provideGCSClient() *storage.Client {
	return infra.InitGCSClient(context.Background())
}

func provideStorageService(client *storage.Client) services.StorageService {
	return services.NewGCSStorageService(client)
}
