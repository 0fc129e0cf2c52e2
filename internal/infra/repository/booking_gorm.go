package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/booking"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var (
	_ domain.AttachmentFinder     = (*BookingGormRepository)(nil)
	_ domain.UserFinder           = (*BookingGormRepository)(nil)
	_ domain.BookedDateRepository = (*BookingGormRepository)(nil)
	_ domain.BookedDateLister     = (*BookingGormRepository)(nil)
)

func (r *BookingGormRepository) FindAttachmentByID(
	ctx context.Context,
	id string,
) (*models.EstablishmentAttachment, error) {

	var att models.EstablishmentAttachment
	err := r.db.WithContext(ctx).
		Preload("Establishment").
		Where("id = ?", id).
		First(&att).Error
	return orNil(&att, err)
}

func (r *BookingGormRepository) FindUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	return orNil(&u, err)
}

func (r *BookingGormRepository) FindBookedDate(
	ctx context.Context,
	attachmentID string,
	date time.Time,
) (*models.BookedDate, error) {

	var b models.BookedDate
	err := r.db.WithContext(ctx).
		Where("establishment_attachment_id = ? AND booked_date = ?", attachmentID, domain.CalendarDay(date)).
		First(&b).Error
	return orNil(&b, err)
}

// SaveBookedDate relies on idx_booked_dates_attachment_date: of two racing
// inserts for the same pair only one is committed.
func (r *BookingGormRepository) SaveBookedDate(
	ctx context.Context,
	b *models.BookedDate,
) error {
	b.BookedDate = domain.CalendarDay(b.BookedDate)

	err := r.db.WithContext(ctx).Create(b).Error
	if isDuplicateKey(err) {
		return domain.ErrDuplicateBooking
	}
	return err
}

func (r *BookingGormRepository) ListBookedDatesForUser(
	ctx context.Context,
	q domain.UserBookingsQuery,
) ([]models.BookedDate, int64, error) {

	tx := r.db.WithContext(ctx).
		Model(&models.BookedDate{}).
		Where("user_id = ?", q.UserID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.BookedDate
	if err := tx.
		Preload("EstablishmentAttachment.Establishment").
		Order("booked_date DESC").
		Limit(q.Limit()).
		Offset(q.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
