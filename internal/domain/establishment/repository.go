package establishment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/pagination"
)

// ErrDuplicateName is returned on writes that break the (owner, name)
// unique index.
var ErrDuplicateName = errors.New("establishment_name_duplicated")

// Finders return (nil, nil) when nothing matches.

type Finder interface {
	// FindEstablishmentByID loads the establishment with its attachment,
	// images and commodities.
	FindEstablishmentByID(
		ctx context.Context,
		id string,
	) (*models.Establishment, error)
}

type NameFinder interface {
	FindEstablishmentByName(
		ctx context.Context,
		ownerID string,
		name string,
	) (*models.Establishment, error)
}

type AttachmentFinder interface {
	FindAttachmentByEstablishmentID(
		ctx context.Context,
		establishmentID string,
	) (*models.EstablishmentAttachment, error)
}

type OwnerFinder interface {
	FindUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)
}

// Changes splits a sparse update by the table it lands on. Keys are column
// names.
type Changes struct {
	Establishment map[string]any
	Attachment    map[string]any
}

func (c Changes) Empty() bool {
	return len(c.Establishment) == 0 && len(c.Attachment) == 0
}

type Writer interface {
	// CreateEstablishment inserts the establishment and its attachment in
	// one transaction.
	CreateEstablishment(
		ctx context.Context,
		e *models.Establishment,
	) error

	// UpdateEstablishment applies both halves of ch in one transaction and
	// returns the reloaded establishment.
	UpdateEstablishment(
		ctx context.Context,
		id string,
		ch Changes,
	) (*models.Establishment, error)
}

type Query struct {
	Type  string
	City  string
	State string
	Name  string
	pagination.Params
}

type OwnerQuery struct {
	OwnerID string
	pagination.Params
}

type Lister interface {
	FindEstablishments(
		ctx context.Context,
		q Query,
	) ([]models.Establishment, int64, error)

	FindEstablishmentsByOwner(
		ctx context.Context,
		q OwnerQuery,
	) ([]models.Establishment, int64, error)
}
