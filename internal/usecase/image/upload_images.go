package image

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	establishment "github.com/BruksfildServices01/property-booking/internal/domain/establishment"
	domain "github.com/BruksfildServices01/property-booking/internal/domain/image"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

const (
	SubjectEstablishment = "Establishment"
	SubjectAttachment    = "Establishment attachment"
	SubjectImage         = "Establishment image"

	FieldImages = "images"

	MsgNotOwner = "Requester does not owns this establishment"

	MaxImagesPerUpload = 10
)

type Repository interface {
	establishment.Finder
	establishment.AttachmentFinder
	domain.Repository
}

// File is one uploaded image as received from the client.
type File struct {
	Name string
	Data []byte
}

type UploadImagesInput struct {
	OwnerID         string
	EstablishmentID string
	Files           []File
}

type UploadImages struct {
	repo    Repository
	storage domain.BlobStorage
	encoder domain.Encoder
	audit   *audit.Dispatcher
}

func NewUploadImages(
	repo Repository,
	storage domain.BlobStorage,
	encoder domain.Encoder,
	audit *audit.Dispatcher,
) *UploadImages {
	return &UploadImages{
		repo:    repo,
		storage: storage,
		encoder: encoder,
		audit:   audit,
	}
}

// Execute encodes every file before anything is stored, so a bad file
// leaves no trace. Blobs already uploaded are removed when a later step
// fails.
func (uc *UploadImages) Execute(
	ctx context.Context,
	in UploadImagesInput,
) ([]models.EstablishmentImage, error) {

	if len(in.Files) == 0 {
		return nil, httperr.MissingParam(FieldImages)
	}
	if len(in.Files) > MaxImagesPerUpload {
		return nil, httperr.InvalidParam(FieldImages)
	}

	att, err := ownedAttachment(ctx, uc.repo, in.OwnerID, in.EstablishmentID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Conversão (tudo ou nada)
	// --------------------------------------------------
	encoded := make([][]byte, 0, len(in.Files))
	for _, f := range in.Files {
		b, err := uc.encoder.Encode(f.Data)
		if err != nil {
			return nil, httperr.InvalidParam(FieldImages)
		}
		encoded = append(encoded, b)
	}

	// --------------------------------------------------
	// 2️⃣ Upload
	// --------------------------------------------------
	images := make([]models.EstablishmentImage, 0, len(encoded))
	for _, body := range encoded {
		key := fmt.Sprintf("establishments/%s/%s%s", in.EstablishmentID, uuid.NewString(), uc.encoder.Extension())

		url, err := uc.storage.Put(ctx, key, uc.encoder.ContentType(), body)
		if err != nil {
			uc.discard(images)
			return nil, fmt.Errorf("upload image: %w", err)
		}

		images = append(images, models.EstablishmentImage{
			EstablishmentAttachmentID: att.ID,
			URL:                       url,
			ObjectKey:                 key,
		})
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	if err := uc.repo.CreateImages(ctx, images); err != nil {
		uc.discard(images)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   audit.ActionImagesReconciled,
		Entity:   "establishment_attachment",
		EntityID: att.ID,
		Metadata: map[string]any{"uploaded": len(images)},
	})

	return images, nil
}

// discard removes blobs whose rows were never written. It runs on a fresh
// context because the request one may already be done.
func (uc *UploadImages) discard(images []models.EstablishmentImage) {
	for _, img := range images {
		if err := uc.storage.Delete(context.Background(), img.ObjectKey); err != nil {
			slog.Warn("discard uploaded image failed",
				slog.String("key", img.ObjectKey),
				slog.Any("error", err),
			)
		}
	}
}

// ownedAttachment runs the checks shared by every image operation.
func ownedAttachment(
	ctx context.Context,
	repo Repository,
	ownerID, establishmentID string,
) (*models.EstablishmentAttachment, error) {
	est, err := repo.FindEstablishmentByID(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, httperr.NotFoundErr(SubjectEstablishment)
	}
	if est.OwnerID != ownerID {
		return nil, httperr.Forbidden(MsgNotOwner)
	}

	att, err := repo.FindAttachmentByEstablishmentID(ctx, est.ID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, httperr.NotFoundErr(SubjectAttachment)
	}
	return att, nil
}
