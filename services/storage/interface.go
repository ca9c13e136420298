package storage

import "context"

// StorageService stores user-generated binary assets (proof photos, site
// photos, rendered signatures) and returns a public URL.
type StorageService interface {
	UploadImage(ctx context.Context, folder, name string, data []byte) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}
