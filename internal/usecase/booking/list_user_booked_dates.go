package booking

import (
	"context"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/booking"
	"github.com/BruksfildServices01/property-booking/internal/pagination"
	"github.com/BruksfildServices01/property-booking/internal/timezone"
)

type ListUserBookedDatesInput struct {
	UserID  string
	Page    int
	PerPage int
}

type UserBookedDate struct {
	ID                        string `json:"id"`
	EstablishmentAttachmentID string `json:"establishmentAttachmentId"`
	EstablishmentID           string `json:"establishmentId,omitempty"`
	EstablishmentName         string `json:"establishmentName,omitempty"`
	BookedDate                string `json:"bookedDate"`
}

type ListUserBookedDates struct {
	repo domain.BookedDateLister
}

func NewListUserBookedDates(repo domain.BookedDateLister) *ListUserBookedDates {
	return &ListUserBookedDates{repo: repo}
}

func (uc *ListUserBookedDates) Execute(
	ctx context.Context,
	in ListUserBookedDatesInput,
) (pagination.Page[UserBookedDate], error) {

	p := pagination.Clamp(in.Page, in.PerPage)

	rows, total, err := uc.repo.ListBookedDatesForUser(ctx, domain.UserBookingsQuery{
		UserID: in.UserID,
		Params: p,
	})
	if err != nil {
		return pagination.Page[UserBookedDate]{}, err
	}

	items := make([]UserBookedDate, 0, len(rows))
	for _, b := range rows {
		item := UserBookedDate{
			ID:                        b.ID,
			EstablishmentAttachmentID: b.EstablishmentAttachmentID,
		}

		state := ""
		if b.EstablishmentAttachment != nil && b.EstablishmentAttachment.Establishment != nil {
			est := b.EstablishmentAttachment.Establishment
			item.EstablishmentID = est.ID
			item.EstablishmentName = est.Name
			state = est.State
		}
		item.BookedDate = timezone.DateConverterGMT(b.BookedDate, state)

		items = append(items, item)
	}

	return pagination.NewPage(items, total, p), nil
}
