package image

import (
	"context"
	"log/slog"
	"strings"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	domain "github.com/BruksfildServices01/property-booking/internal/domain/image"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
)

type DeleteImagesInput struct {
	OwnerID         string
	EstablishmentID string
	IDs             []string
}

type DeleteImages struct {
	repo    Repository
	storage domain.BlobStorage
	audit   *audit.Dispatcher
}

func NewDeleteImages(
	repo Repository,
	storage domain.BlobStorage,
	audit *audit.Dispatcher,
) *DeleteImages {
	return &DeleteImages{
		repo:    repo,
		storage: storage,
		audit:   audit,
	}
}

// Execute deletes the rows first. A blob left behind by a failed storage
// delete is only logged; the image is already gone for clients.
func (uc *DeleteImages) Execute(ctx context.Context, in DeleteImagesInput) error {
	ids := make([]string, 0, len(in.IDs))
	seen := map[string]bool{}
	for _, id := range in.IDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return httperr.MissingParam("ids")
	}

	att, err := ownedAttachment(ctx, uc.repo, in.OwnerID, in.EstablishmentID)
	if err != nil {
		return err
	}

	found, err := uc.repo.FindImagesByIDs(ctx, att.ID, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return httperr.NotFoundErr(SubjectImage)
	}

	if err := uc.repo.DeleteImages(ctx, att.ID, ids); err != nil {
		return err
	}

	for _, img := range found {
		if img.ObjectKey == "" {
			continue
		}
		if err := uc.storage.Delete(ctx, img.ObjectKey); err != nil {
			slog.Warn("delete image blob failed",
				slog.String("image_id", img.ID),
				slog.String("key", img.ObjectKey),
				slog.Any("error", err),
			)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   audit.ActionImagesReconciled,
		Entity:   "establishment_attachment",
		EntityID: att.ID,
		Metadata: map[string]any{"deleted": ids},
	})

	return nil
}
