package establishment

import (
	"context"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/establishment"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type GetEstablishment struct {
	repo domain.Finder
}

func NewGetEstablishment(repo domain.Finder) *GetEstablishment {
	return &GetEstablishment{repo: repo}
}

func (uc *GetEstablishment) Execute(ctx context.Context, id string) (*models.Establishment, error) {
	est, err := uc.repo.FindEstablishmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, httperr.NotFoundErr(SubjectEstablishment)
	}
	return est, nil
}
