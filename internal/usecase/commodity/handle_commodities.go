package commodity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	domain "github.com/BruksfildServices01/property-booking/internal/domain/commodity"
	establishment "github.com/BruksfildServices01/property-booking/internal/domain/establishment"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

const (
	SubjectEstablishment = "Establishment"
	SubjectAttachment    = "Establishment attachment"
	SubjectCommodity     = "Commodity"

	MsgNotOwner = "Requester does not owns this establishment"
)

// ======================================================
// INPUT
// ======================================================

type HandleCommoditiesInput struct {
	OwnerID         string
	EstablishmentID string

	ToCreate []domain.Input
	ToUpdate []domain.Update
	ToDelete []string
}

type Repository interface {
	establishment.Finder
	establishment.AttachmentFinder
	domain.Repository
}

// ======================================================
// USE CASE
// ======================================================

type HandleCommodities struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewHandleCommodities(
	repo Repository,
	audit *audit.Dispatcher,
) *HandleCommodities {
	return &HandleCommodities{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the whole batch before touching storage, then applies it
// as one unit. It returns the attachment's commodities after the batch.
func (uc *HandleCommodities) Execute(
	ctx context.Context,
	in HandleCommoditiesInput,
) ([]models.Commodity, error) {

	// --------------------------------------------------
	// 1️⃣ Estabelecimento + dono
	// --------------------------------------------------
	est, err := uc.repo.FindEstablishmentByID(ctx, in.EstablishmentID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, httperr.NotFoundErr(SubjectEstablishment)
	}
	if est.OwnerID != in.OwnerID {
		return nil, httperr.Forbidden(MsgNotOwner)
	}

	// --------------------------------------------------
	// 2️⃣ Attachment
	// --------------------------------------------------
	att, err := uc.repo.FindAttachmentByEstablishmentID(ctx, est.ID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, httperr.NotFoundErr(SubjectAttachment)
	}

	batch, err := normalize(in)
	if err != nil {
		return nil, err
	}
	if batch.Empty() {
		return uc.repo.ListCommodities(ctx, att.ID)
	}

	// --------------------------------------------------
	// 3️⃣ Nomes novos não podem repetir
	// --------------------------------------------------
	if err := uc.checkNames(ctx, att.ID, batch); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Persistência
	// --------------------------------------------------
	if err := uc.repo.HandleCommodityBatch(ctx, att.ID, batch); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommodityNotFound):
			return nil, httperr.NotFoundErr(SubjectCommodity)
		case errors.Is(err, domain.ErrDuplicateName):
			return nil, uc.raceLostName(ctx, att.ID, batch)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   audit.ActionCommoditiesReconciled,
		Entity:   "establishment_attachment",
		EntityID: att.ID,
		Metadata: map[string]any{
			"created": len(batch.ToCreate),
			"updated": len(batch.ToUpdate),
			"deleted": len(batch.ToDelete),
		},
	})

	return uc.repo.ListCommodities(ctx, att.ID)
}

// checkNames rejects a name that repeats inside the batch or that another
// commodity of the attachment already uses.
func (uc *HandleCommodities) checkNames(
	ctx context.Context,
	attachmentID string,
	batch domain.Batch,
) error {
	owners := map[string]string{}
	names := make([]string, 0, len(batch.ToCreate)+len(batch.ToUpdate))

	claim := func(name, id string) error {
		if _, taken := owners[name]; taken {
			return iconNameTaken(name)
		}
		owners[name] = id
		names = append(names, name)
		return nil
	}

	for _, c := range batch.ToCreate {
		if err := claim(c.Name, ""); err != nil {
			return err
		}
	}
	for _, u := range batch.ToUpdate {
		if err := claim(u.Name, u.ID); err != nil {
			return err
		}
	}

	existing, err := uc.repo.FindCommoditiesByNames(ctx, attachmentID, names)
	if err != nil {
		return err
	}

	deleted := map[string]bool{}
	for _, id := range batch.ToDelete {
		deleted[id] = true
	}

	for _, c := range existing {
		id := owners[c.Name]
		// renaming a commodity to its own name is fine, and so is reusing
		// the name of one deleted in the same batch
		if (id != "" && id == c.ID) || deleted[c.ID] {
			continue
		}
		return iconNameTaken(c.Name)
	}
	return nil
}

// raceLostName names the commodity that a concurrent batch took after
// checkNames passed.
func (uc *HandleCommodities) raceLostName(
	ctx context.Context,
	attachmentID string,
	batch domain.Batch,
) error {
	if err := uc.checkNames(ctx, attachmentID, batch); err != nil {
		return err
	}
	switch {
	case len(batch.ToCreate) > 0:
		return iconNameTaken(batch.ToCreate[0].Name)
	case len(batch.ToUpdate) > 0:
		return iconNameTaken(batch.ToUpdate[0].Name)
	}
	return httperr.AlreadyExists("Icon name")
}

func normalize(in HandleCommoditiesInput) (domain.Batch, error) {
	var b domain.Batch

	for _, c := range in.ToCreate {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return b, httperr.InvalidParam("name")
		}
		b.ToCreate = append(b.ToCreate, domain.Input{Name: name, Icon: strings.TrimSpace(c.Icon)})
	}

	for _, u := range in.ToUpdate {
		name := strings.TrimSpace(u.Name)
		if strings.TrimSpace(u.ID) == "" {
			return b, httperr.MissingParam("id")
		}
		if name == "" {
			return b, httperr.InvalidParam("name")
		}
		b.ToUpdate = append(b.ToUpdate, domain.Update{ID: u.ID, Name: name, Icon: strings.TrimSpace(u.Icon)})
	}

	for _, id := range in.ToDelete {
		if id = strings.TrimSpace(id); id != "" {
			b.ToDelete = append(b.ToDelete, id)
		}
	}

	return b, nil
}

func iconNameTaken(name string) error {
	return httperr.AlreadyExists(fmt.Sprintf("Icon name: %s", name))
}
