package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/establishment"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type EstablishmentGormRepository struct {
	db *gorm.DB
}

func NewEstablishmentGormRepository(db *gorm.DB) *EstablishmentGormRepository {
	return &EstablishmentGormRepository{db: db}
}

var (
	_ domain.Finder           = (*EstablishmentGormRepository)(nil)
	_ domain.NameFinder       = (*EstablishmentGormRepository)(nil)
	_ domain.AttachmentFinder = (*EstablishmentGormRepository)(nil)
	_ domain.OwnerFinder      = (*EstablishmentGormRepository)(nil)
	_ domain.Writer           = (*EstablishmentGormRepository)(nil)
	_ domain.Lister           = (*EstablishmentGormRepository)(nil)
)

func withCollections(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Attachment").
		Preload("Attachment.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Attachment.Commodities", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		})
}

// --------------------------------------------------
// Finders
// --------------------------------------------------

func (r *EstablishmentGormRepository) FindEstablishmentByID(
	ctx context.Context,
	id string,
) (*models.Establishment, error) {

	var est models.Establishment
	err := withCollections(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&est).Error
	return orNil(&est, err)
}

func (r *EstablishmentGormRepository) FindEstablishmentByName(
	ctx context.Context,
	ownerID string,
	name string,
) (*models.Establishment, error) {

	var est models.Establishment
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&est).Error
	return orNil(&est, err)
}

func (r *EstablishmentGormRepository) FindAttachmentByEstablishmentID(
	ctx context.Context,
	establishmentID string,
) (*models.EstablishmentAttachment, error) {

	var att models.EstablishmentAttachment
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		First(&att).Error
	return orNil(&att, err)
}

func (r *EstablishmentGormRepository) FindUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	return orNil(&u, err)
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *EstablishmentGormRepository) CreateEstablishment(
	ctx context.Context,
	e *models.Establishment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		att := e.Attachment
		if att == nil {
			att = &models.EstablishmentAttachment{}
		}

		if err := tx.Omit("Attachment").Create(e).Error; err != nil {
			return err
		}

		att.EstablishmentID = e.ID
		if err := tx.Create(att).Error; err != nil {
			return err
		}
		e.Attachment = att
		return nil
	})
	if isDuplicateKey(err) {
		return domain.ErrDuplicateName
	}
	return err
}

func (r *EstablishmentGormRepository) UpdateEstablishment(
	ctx context.Context,
	id string,
	ch domain.Changes,
) (*models.Establishment, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ch.Establishment) > 0 {
			if err := tx.Model(&models.Establishment{}).
				Where("id = ?", id).
				Updates(ch.Establishment).Error; err != nil {
				return err
			}
		}

		if len(ch.Attachment) > 0 {
			if err := tx.Model(&models.EstablishmentAttachment{}).
				Where("establishment_id = ?", id).
				Updates(ch.Attachment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if isDuplicateKey(err) {
		return nil, domain.ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}

	return r.FindEstablishmentByID(ctx, id)
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *EstablishmentGormRepository) FindEstablishments(
	ctx context.Context,
	q domain.Query,
) ([]models.Establishment, int64, error) {

	tx := r.db.WithContext(ctx).Model(&models.Establishment{})

	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.State != "" {
		tx = tx.Where("state = ?", q.State)
	}
	if q.City != "" {
		tx = tx.Where("LOWER(city) = ?", strings.ToLower(q.City))
	}
	if q.Name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Name)+"%")
	}

	return r.page(tx, q.Limit(), q.Offset())
}

func (r *EstablishmentGormRepository) FindEstablishmentsByOwner(
	ctx context.Context,
	q domain.OwnerQuery,
) ([]models.Establishment, int64, error) {

	tx := r.db.WithContext(ctx).
		Model(&models.Establishment{}).
		Where("owner_id = ?", q.OwnerID)

	return r.page(tx, q.Limit(), q.Offset())
}

func (r *EstablishmentGormRepository) page(
	tx *gorm.DB,
	limit, offset int,
) ([]models.Establishment, int64, error) {

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Establishment
	if err := withCollections(tx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
