package image

import (
	"context"

	"github.com/BruksfildServices01/property-booking/internal/models"
)

type Repository interface {
	CreateImages(
		ctx context.Context,
		images []models.EstablishmentImage,
	) error

	FindImagesByIDs(
		ctx context.Context,
		attachmentID string,
		ids []string,
	) ([]models.EstablishmentImage, error)

	DeleteImages(
		ctx context.Context,
		attachmentID string,
		ids []string,
	) error
}

// BlobStorage stores encoded images and returns their public URL.
type BlobStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// Encoder turns an uploaded file into the stored representation.
type Encoder interface {
	Encode(data []byte) ([]byte, error)
	ContentType() string
	Extension() string
}
