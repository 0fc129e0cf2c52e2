package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/booking"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type fakeLister struct {
	rows []models.BookedDate
	got  domain.UserBookingsQuery
}

func (f *fakeLister) ListBookedDatesForUser(_ context.Context, q domain.UserBookingsQuery) ([]models.BookedDate, int64, error) {
	f.got = q
	return f.rows, int64(len(f.rows)), nil
}

func TestListUserBookedDatesLocalizesAndClamps(t *testing.T) {
	repo := &fakeLister{rows: []models.BookedDate{
		{
			ID:                        "b1",
			EstablishmentAttachmentID: "att-1",
			BookedDate:                time.Date(2024, 3, 21, 10, 0, 0, 0, time.UTC),
			EstablishmentAttachment: &models.EstablishmentAttachment{
				ID: "att-1",
				Establishment: &models.Establishment{
					ID:    "est-1",
					Name:  "Casa Azul",
					State: "AM",
				},
			},
		},
	}}
	uc := NewListUserBookedDates(repo)

	page, err := uc.Execute(context.Background(), ListUserBookedDatesInput{
		UserID:  guestID,
		Page:    0,
		PerPage: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.got.UserID != guestID || repo.got.Page != 1 || repo.got.PerPage != 100 {
		t.Fatalf("unexpected query %+v", repo.got)
	}
	if page.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("unexpected page %+v", page)
	}

	got := page.Data[0]
	if got.BookedDate != "21/03/2024, 06:00:00" {
		t.Fatalf("unexpected localized date %q", got.BookedDate)
	}
	if got.EstablishmentName != "Casa Azul" || got.EstablishmentID != "est-1" {
		t.Fatalf("unexpected establishment fields %+v", got)
	}
}

func TestListUserBookedDatesEmptyIsNotNil(t *testing.T) {
	uc := NewListUserBookedDates(&fakeLister{})

	page, err := uc.Execute(context.Background(), ListUserBookedDatesInput{UserID: guestID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Data == nil {
		t.Fatalf("expected an empty slice")
	}
	if page.PerPage != 5 {
		t.Fatalf("expected default perPage 5, got %d", page.PerPage)
	}
}
