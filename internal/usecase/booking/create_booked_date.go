package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	domain "github.com/BruksfildServices01/property-booking/internal/domain/booking"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/timezone"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

const (
	FieldBookedDate = "bookedDate"

	SubjectBookedDate = "Booked date provided"
	SubjectAttachment = "Establishment attachment"
	SubjectUser       = "User"

	MsgSelfBooking = "An Establishment owner can't book dates on their own establishment."
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookedDateInput struct {
	UserID                    string
	EstablishmentAttachmentID string
	BookedDate                string
}

type CreateBookedDateOutput struct {
	ID         string `json:"id"`
	BookedDate string `json:"bookedDate"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBookedDate struct {
	attachments domain.AttachmentFinder
	users       domain.UserFinder
	bookings    domain.BookedDateRepository
	audit       *audit.Dispatcher
	events      domain.EventPublisher

	now func() time.Time
}

func NewCreateBookedDate(
	attachments domain.AttachmentFinder,
	users domain.UserFinder,
	bookings domain.BookedDateRepository,
	audit *audit.Dispatcher,
	events domain.EventPublisher,
) *CreateBookedDate {
	return &CreateBookedDate{
		attachments: attachments,
		users:       users,
		bookings:    bookings,
		audit:       audit,
		events:      events,
		now:         time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute admits a reservation. Every step short-circuits, and the order
// is fixed: a missing attachment is reported before any conflict or user
// lookup happens.
func (uc *CreateBookedDate) Execute(
	ctx context.Context,
	in CreateBookedDateInput,
) (*CreateBookedDateOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Formato da data
	// --------------------------------------------------
	parsed, ok := validators.ParseISODate(in.BookedDate)
	if !ok {
		return nil, httperr.InvalidParam(FieldBookedDate)
	}
	// a time of day is dropped; the booking covers the whole date
	date := domain.CalendarDay(parsed)

	// --------------------------------------------------
	// 2️⃣ Data no passado
	// --------------------------------------------------
	if date.Before(uc.now()) {
		return nil, httperr.PastDate(SubjectBookedDate)
	}

	// --------------------------------------------------
	// 3️⃣ Attachment
	// --------------------------------------------------
	att, err := uc.attachments.FindAttachmentByID(ctx, in.EstablishmentAttachmentID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, httperr.NotFoundErr(SubjectAttachment)
	}

	// --------------------------------------------------
	// 4️⃣ Dono não reserva o próprio imóvel
	// --------------------------------------------------
	var state, establishmentID string
	if att.Establishment != nil {
		if att.Establishment.OwnerID == in.UserID {
			return nil, httperr.Conflict(MsgSelfBooking)
		}
		state = att.Establishment.State
		establishmentID = att.Establishment.ID
	}

	// --------------------------------------------------
	// 5️⃣ Data já reservada
	// --------------------------------------------------
	existing, err := uc.bookings.FindBookedDate(ctx, att.ID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.AlreadyBooked(SubjectBookedDate)
	}

	// --------------------------------------------------
	// 6️⃣ Usuário
	// --------------------------------------------------
	user, err := uc.users.FindUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.NotFoundErr(SubjectUser)
	}

	// --------------------------------------------------
	// 7️⃣ Persistência
	// --------------------------------------------------
	// The unique index on (attachment, date) catches a concurrent insert
	// that passed step 5.
	booked := &models.BookedDate{
		EstablishmentAttachmentID: att.ID,
		UserID:                    user.ID,
		BookedDate:                date,
	}
	if err := uc.bookings.SaveBookedDate(ctx, booked); err != nil {
		if errors.Is(err, domain.ErrDuplicateBooking) {
			return nil, httperr.AlreadyBooked(SubjectBookedDate)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   audit.ActionBookedDateCreated,
		Entity:   "booked_date",
		EntityID: booked.ID,
		Metadata: map[string]any{
			"establishment_attachment_id": att.ID,
			"booked_date":                 date.Format(time.RFC3339),
		},
	})

	if uc.events != nil {
		evt := domain.BookedDateCreated{
			BookedDateID:    booked.ID,
			AttachmentID:    att.ID,
			EstablishmentID: establishmentID,
			UserID:          user.ID,
			BookedDate:      date,
		}
		if err := uc.events.PublishJSON(ctx, domain.EventBookedDateCreated, evt); err != nil {
			slog.Warn("publish booking event failed",
				slog.String("booked_date_id", booked.ID),
				slog.Any("error", err),
			)
		}
	}

	// --------------------------------------------------
	// 8️⃣ Resposta no horário do estado
	// --------------------------------------------------
	return &CreateBookedDateOutput{
		ID:         booked.ID,
		BookedDate: timezone.DateConverterGMT(booked.BookedDate, state),
	}, nil
}
