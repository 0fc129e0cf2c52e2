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

type CreateEstablishmentInput struct {
	OwnerID string

	Type        string
	Name        string
	Description string
	Contact     string

	Zipcode    string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Country    string

	MinBookingHour string
	MaxBookingHour string
}

type CreateRepository interface {
	domain.OwnerFinder
	domain.NameFinder
	domain.Writer
}

type CreateEstablishment struct {
	repo  CreateRepository
	audit *audit.Dispatcher
}

func NewCreateEstablishment(
	repo CreateRepository,
	audit *audit.Dispatcher,
) *CreateEstablishment {
	return &CreateEstablishment{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates the establishment together with its attachment.
func (uc *CreateEstablishment) Execute(
	ctx context.Context,
	in CreateEstablishmentInput,
) (*models.Establishment, error) {

	in = trimCreate(in)
	in.State = strings.ToUpper(in.State)
	if in.Country == "" {
		in.Country = validators.SupportedCountry
	}

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	required := []struct {
		field string
		value string
	}{
		{"type", in.Type},
		{"name", in.Name},
		{"contact", in.Contact},
		{"zipcode", in.Zipcode},
		{"street", in.Street},
		{"number", in.Number},
		{"district", in.District},
		{"city", in.City},
		{"state", in.State},
		{domain.FieldMinBookingHour, in.MinBookingHour},
		{domain.FieldMaxBookingHour, in.MaxBookingHour},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, httperr.MissingParam(r.field)
		}
	}

	// --------------------------------------------------
	// 2️⃣ Formatos + janela de reserva
	// --------------------------------------------------
	if err := checkFormats(&in.Type, &in.Zipcode, &in.Contact, &in.Country, &in.State); err != nil {
		return nil, err
	}
	if err := domain.ValidateBookingWindow(in.MinBookingHour, in.MaxBookingHour); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Dono
	// --------------------------------------------------
	owner, err := uc.repo.FindUserByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, httperr.NotFoundErr(SubjectOwner)
	}

	// --------------------------------------------------
	// 4️⃣ Nome único por dono
	// --------------------------------------------------
	same, err := uc.repo.FindEstablishmentByName(ctx, owner.ID, in.Name)
	if err != nil {
		return nil, err
	}
	if same != nil {
		return nil, httperr.AlreadyExists(SubjectNameTaken)
	}

	// --------------------------------------------------
	// 5️⃣ Persistência (estabelecimento + attachment)
	// --------------------------------------------------
	est := &models.Establishment{
		OwnerID:     owner.ID,
		Type:        in.Type,
		Name:        in.Name,
		Description: in.Description,
		Contact:     in.Contact,
		Zipcode:     in.Zipcode,
		Street:      in.Street,
		Number:      in.Number,
		Complement:  in.Complement,
		District:    in.District,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		Attachment: &models.EstablishmentAttachment{
			MinBookingHour: in.MinBookingHour,
			MaxBookingHour: in.MaxBookingHour,
		},
	}

	if err := uc.repo.CreateEstablishment(ctx, est); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, httperr.AlreadyExists(SubjectNameTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   owner.ID,
		Action:   audit.ActionEstablishmentCreated,
		Entity:   "establishment",
		EntityID: est.ID,
		Metadata: map[string]any{"name": est.Name, "type": est.Type},
	})

	return est, nil
}

func trimCreate(in CreateEstablishmentInput) CreateEstablishmentInput {
	for _, p := range []*string{
		&in.Type, &in.Name, &in.Description, &in.Contact,
		&in.Zipcode, &in.Street, &in.Number, &in.Complement,
		&in.District, &in.City, &in.State, &in.Country,
		&in.MinBookingHour, &in.MaxBookingHour,
	} {
		*p = strings.TrimSpace(*p)
	}
	return in
}
