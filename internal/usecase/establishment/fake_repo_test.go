package establishment

import (
	"context"
	"strconv"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/establishment"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

// memRepo keeps establishments keyed by id. Attachments live inside them.
type memRepo struct {
	users          map[string]*models.User
	establishments map[string]*models.Establishment
	seq            int

	lastChanges domain.Changes
	updates     int
	calls       []string
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:          map[string]*models.User{},
		establishments: map[string]*models.Establishment{},
	}
}

func (r *memRepo) seed(e *models.Establishment) {
	if e.Attachment == nil {
		e.Attachment = &models.EstablishmentAttachment{}
	}
	e.Attachment.ID = "att-" + e.ID
	e.Attachment.EstablishmentID = e.ID
	r.establishments[e.ID] = e
}

func (r *memRepo) FindUserByID(_ context.Context, id string) (*models.User, error) {
	r.calls = append(r.calls, "user")
	return r.users[id], nil
}

func (r *memRepo) FindEstablishmentByID(_ context.Context, id string) (*models.Establishment, error) {
	r.calls = append(r.calls, "establishment")
	e, ok := r.establishments[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memRepo) FindEstablishmentByName(_ context.Context, ownerID, name string) (*models.Establishment, error) {
	r.calls = append(r.calls, "name")
	for _, e := range r.establishments {
		if e.OwnerID == ownerID && e.Name == name {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) FindAttachmentByEstablishmentID(_ context.Context, id string) (*models.EstablishmentAttachment, error) {
	r.calls = append(r.calls, "attachment")
	e, ok := r.establishments[id]
	if !ok || e.Attachment == nil {
		return nil, nil
	}
	cp := *e.Attachment
	return &cp, nil
}

func (r *memRepo) CreateEstablishment(_ context.Context, e *models.Establishment) error {
	r.seq++
	e.ID = "est-new-" + strconv.Itoa(r.seq)
	r.seed(e)
	return nil
}

func (r *memRepo) UpdateEstablishment(_ context.Context, id string, ch domain.Changes) (*models.Establishment, error) {
	r.updates++
	r.lastChanges = ch
	e := r.establishments[id]
	for col, v := range ch.Establishment {
		s := v.(string)
		switch col {
		case "name":
			e.Name = s
		case "zipcode":
			e.Zipcode = s
		case "contact":
			e.Contact = s
		case "country":
			e.Country = s
		case "state":
			e.State = s
		case "city":
			e.City = s
		}
	}
	for col, v := range ch.Attachment {
		s := v.(string)
		switch col {
		case "min_booking_hour":
			e.Attachment.MinBookingHour = s
		case "max_booking_hour":
			e.Attachment.MaxBookingHour = s
		}
	}
	cp := *e
	return &cp, nil
}

func (r *memRepo) FindEstablishments(_ context.Context, q domain.Query) ([]models.Establishment, int64, error) {
	var out []models.Establishment
	for _, e := range r.establishments {
		if q.Type != "" && e.Type != q.Type {
			continue
		}
		if q.State != "" && e.State != q.State {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *memRepo) FindEstablishmentsByOwner(_ context.Context, q domain.OwnerQuery) ([]models.Establishment, int64, error) {
	var out []models.Establishment
	for _, e := range r.establishments {
		if e.OwnerID == q.OwnerID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func strPtr(s string) *string { return &s }
