package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/pagination"
)

// ErrDuplicateBooking is returned by SaveBookedDate when the
// (attachment, date) pair is already taken.
var ErrDuplicateBooking = errors.New("booked_date_duplicated")

// CalendarDay reduces t to midnight UTC of its UTC date. A booked date is
// stored and compared at this resolution.
func CalendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Finders return (nil, nil) when nothing matches.

type AttachmentFinder interface {
	// FindAttachmentByID loads the attachment with its Establishment.
	FindAttachmentByID(
		ctx context.Context,
		id string,
	) (*models.EstablishmentAttachment, error)
}

type UserFinder interface {
	FindUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)
}

type BookedDateRepository interface {
	FindBookedDate(
		ctx context.Context,
		attachmentID string,
		date time.Time,
	) (*models.BookedDate, error)

	SaveBookedDate(
		ctx context.Context,
		b *models.BookedDate,
	) error
}

type UserBookingsQuery struct {
	UserID string
	pagination.Params
}

type BookedDateLister interface {
	// ListBookedDatesForUser loads each booking with its attachment and
	// establishment, newest date first.
	ListBookedDatesForUser(
		ctx context.Context,
		q UserBookingsQuery,
	) ([]models.BookedDate, int64, error)
}

// Event routing keys.
const (
	EventBookedDateCreated = "booking.created"
)

type BookedDateCreated struct {
	BookedDateID    string    `json:"booked_date_id"`
	AttachmentID    string    `json:"establishment_attachment_id"`
	EstablishmentID string    `json:"establishment_id"`
	UserID          string    `json:"user_id"`
	BookedDate      time.Time `json:"booked_date"`
}

// EventPublisher delivers domain events to the message bus.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
