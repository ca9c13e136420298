package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage wraps an initialized Cloudinary client. baseFolder
// prefixes every upload so environments share one account without colliding.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary, baseFolder string) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld, folder: baseFolder}
}

// NewCloudinaryFromParams builds the client from explicit credentials.
func NewCloudinaryFromParams(cloudName, apiKey, apiSecret, baseFolder string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return NewCloudinaryStorage(cld, baseFolder), nil
}

// UploadImage uploads raw image bytes and returns the delivery URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, folder, name string, data []byte) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   s.folder + "/" + folder,
		PublicID: name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for uploaded image")
	}
	return result.SecureURL, nil
}

// DeleteImage removes an uploaded image by its public ID.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
