package establishment

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	domain "github.com/BruksfildServices01/property-booking/internal/domain/establishment"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// UpdateEstablishmentInput is a sparse update: nil fields are left as
// stored.
type UpdateEstablishmentInput struct {
	OwnerID string
	ID      string

	Type        *string
	Name        *string
	Description *string
	Contact     *string

	Zipcode    *string
	Street     *string
	Number     *string
	Complement *string
	District   *string
	City       *string
	State      *string
	Country    *string

	MinBookingHour *string
	MaxBookingHour *string
}

type UpdateRepository interface {
	domain.AttachmentFinder
	domain.NameFinder
	domain.Finder
	domain.Writer
}

// ======================================================
// USE CASE
// ======================================================

type UpdateEstablishment struct {
	repo  UpdateRepository
	audit *audit.Dispatcher
}

func NewUpdateEstablishment(
	repo UpdateRepository,
	audit *audit.Dispatcher,
) *UpdateEstablishment {
	return &UpdateEstablishment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateEstablishment) Execute(
	ctx context.Context,
	in UpdateEstablishmentInput,
) (*models.Establishment, error) {

	in = trimUpdate(in)

	// --------------------------------------------------
	// 1️⃣ Formatos (cep, contato, país, tipo, estado)
	// --------------------------------------------------
	if err := checkFormats(in.Type, in.Zipcode, in.Contact, in.Country, in.State); err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name == "" {
		return nil, httperr.InvalidParam("name")
	}

	// --------------------------------------------------
	// 2️⃣ Attachment
	// --------------------------------------------------
	att, err := uc.repo.FindAttachmentByEstablishmentID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, httperr.NotFoundErr(SubjectAttachment)
	}

	// --------------------------------------------------
	// 3️⃣ Janela de reserva
	// --------------------------------------------------
	// A bound that is not supplied is checked against the stored value of
	// the other one.
	if in.MaxBookingHour != nil && !validators.IsBookingHour(*in.MaxBookingHour) {
		return nil, httperr.InvalidParam(domain.FieldMaxBookingHour)
	}
	if in.MinBookingHour != nil && !validators.IsBookingHour(*in.MinBookingHour) {
		return nil, httperr.InvalidParam(domain.FieldMinBookingHour)
	}
	if in.MinBookingHour != nil || in.MaxBookingHour != nil {
		minHour, maxHour := domain.MergeBookingWindow(att, in.MinBookingHour, in.MaxBookingHour)
		if err := domain.ValidateBookingWindow(minHour, maxHour); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 4️⃣ Nome único por dono
	// --------------------------------------------------
	if in.Name != nil {
		same, err := uc.repo.FindEstablishmentByName(ctx, in.OwnerID, *in.Name)
		if err != nil {
			return nil, err
		}
		if same != nil && same.ID != in.ID {
			return nil, httperr.AlreadyExists(SubjectNameTaken)
		}
	}

	// --------------------------------------------------
	// 5️⃣ Estabelecimento + dono
	// --------------------------------------------------
	est, err := uc.repo.FindEstablishmentByID(ctx, in.ID)
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
	// 6️⃣ Persistência
	// --------------------------------------------------
	changes := buildChanges(in)
	if changes.Empty() {
		return est, nil
	}

	updated, err := uc.repo.UpdateEstablishment(ctx, in.ID, changes)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, httperr.AlreadyExists(SubjectNameTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   audit.ActionEstablishmentUpdated,
		Entity:   "establishment",
		EntityID: in.ID,
		Metadata: changes,
	})

	return updated, nil
}

// trimUpdate returns in with every supplied field trimmed. The pointers are
// copied so the caller's strings are left alone.
func trimUpdate(in UpdateEstablishmentInput) UpdateEstablishmentInput {
	for _, p := range []**string{
		&in.Type, &in.Name, &in.Description, &in.Contact,
		&in.Zipcode, &in.Street, &in.Number, &in.Complement,
		&in.District, &in.City, &in.State, &in.Country,
		&in.MinBookingHour, &in.MaxBookingHour,
	} {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	return in
}

// buildChanges routes the booking window to the attachment and everything
// else to the establishment.
func buildChanges(in UpdateEstablishmentInput) domain.Changes {
	ch := domain.Changes{
		Establishment: map[string]any{},
		Attachment:    map[string]any{},
	}

	setIfPresent(ch.Establishment, "type", in.Type)
	setIfPresent(ch.Establishment, "name", in.Name)
	setIfPresent(ch.Establishment, "description", in.Description)
	setIfPresent(ch.Establishment, "contact", in.Contact)
	setIfPresent(ch.Establishment, "zipcode", in.Zipcode)
	setIfPresent(ch.Establishment, "street", in.Street)
	setIfPresent(ch.Establishment, "number", in.Number)
	setIfPresent(ch.Establishment, "complement", in.Complement)
	setIfPresent(ch.Establishment, "district", in.District)
	setIfPresent(ch.Establishment, "city", in.City)
	setIfPresent(ch.Establishment, "state", in.State)
	if st, ok := ch.Establishment["state"].(string); ok {
		ch.Establishment["state"] = strings.ToUpper(st)
	}
	setIfPresent(ch.Establishment, "country", in.Country)

	setIfPresent(ch.Attachment, "min_booking_hour", in.MinBookingHour)
	setIfPresent(ch.Attachment, "max_booking_hour", in.MaxBookingHour)

	return ch
}
