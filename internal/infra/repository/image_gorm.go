package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/image"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type ImageGormRepository struct {
	db *gorm.DB
}

func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

var _ domain.Repository = (*ImageGormRepository)(nil)

func (r *ImageGormRepository) CreateImages(
	ctx context.Context,
	images []models.EstablishmentImage,
) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *ImageGormRepository) FindImagesByIDs(
	ctx context.Context,
	attachmentID string,
	ids []string,
) ([]models.EstablishmentImage, error) {

	var rows []models.EstablishmentImage
	if err := r.db.WithContext(ctx).
		Where("establishment_attachment_id = ? AND id IN ?", attachmentID, ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ImageGormRepository) DeleteImages(
	ctx context.Context,
	attachmentID string,
	ids []string,
) error {
	return r.db.WithContext(ctx).
		Where("establishment_attachment_id = ? AND id IN ?", attachmentID, ids).
		Delete(&models.EstablishmentImage{}).Error
}
