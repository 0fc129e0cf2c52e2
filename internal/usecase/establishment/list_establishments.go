package establishment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/establishment"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/pagination"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

type ListEstablishmentsInput struct {
	Type  string
	City  string
	State string
	Name  string

	Page    int
	PerPage int
}

type ListEstablishments struct {
	repo domain.Lister
}

func NewListEstablishments(repo domain.Lister) *ListEstablishments {
	return &ListEstablishments{repo: repo}
}

func (uc *ListEstablishments) Execute(
	ctx context.Context,
	in ListEstablishmentsInput,
) (pagination.Page[models.Establishment], error) {

	q := domain.Query{
		Type:   strings.TrimSpace(in.Type),
		City:   strings.TrimSpace(in.City),
		State:  strings.ToUpper(strings.TrimSpace(in.State)),
		Name:   strings.TrimSpace(in.Name),
		Params: pagination.Clamp(in.Page, in.PerPage),
	}

	if q.Type != "" && !validators.IsEstablishmentType(q.Type) {
		return pagination.Page[models.Establishment]{}, httperr.InvalidParam("type")
	}
	if q.State != "" && !validators.IsState(q.State) {
		return pagination.Page[models.Establishment]{}, httperr.InvalidParam("state")
	}

	rows, total, err := uc.repo.FindEstablishments(ctx, q)
	if err != nil {
		return pagination.Page[models.Establishment]{}, err
	}
	return pagination.NewPage(rows, total, q.Params), nil
}

type ListOwnerEstablishmentsInput struct {
	OwnerID string
	Page    int
	PerPage int
}

type ListOwnerEstablishments struct {
	repo domain.Lister
}

func NewListOwnerEstablishments(repo domain.Lister) *ListOwnerEstablishments {
	return &ListOwnerEstablishments{repo: repo}
}

func (uc *ListOwnerEstablishments) Execute(
	ctx context.Context,
	in ListOwnerEstablishmentsInput,
) (pagination.Page[models.Establishment], error) {

	q := domain.OwnerQuery{
		OwnerID: in.OwnerID,
		Params:  pagination.Clamp(in.Page, in.PerPage),
	}

	rows, total, err := uc.repo.FindEstablishmentsByOwner(ctx, q)
	if err != nil {
		return pagination.Page[models.Establishment]{}, err
	}
	return pagination.NewPage(rows, total, q.Params), nil
}
