package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/commodity"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type CommodityGormRepository struct {
	db *gorm.DB
}

func NewCommodityGormRepository(db *gorm.DB) *CommodityGormRepository {
	return &CommodityGormRepository{db: db}
}

var _ domain.Repository = (*CommodityGormRepository)(nil)

func (r *CommodityGormRepository) FindCommoditiesByNames(
	ctx context.Context,
	attachmentID string,
	names []string,
) ([]models.Commodity, error) {

	if len(names) == 0 {
		return nil, nil
	}

	var rows []models.Commodity
	if err := r.db.WithContext(ctx).
		Where("establishment_attachment_id = ? AND name IN ?", attachmentID, names).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CommodityGormRepository) ListCommodities(
	ctx context.Context,
	attachmentID string,
) ([]models.Commodity, error) {

	var rows []models.Commodity
	if err := r.db.WithContext(ctx).
		Where("establishment_attachment_id = ?", attachmentID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// HandleCommodityBatch deletes, then updates, then creates, so a name freed
// by the batch can be reused in it.
func (r *CommodityGormRepository) HandleCommodityBatch(
	ctx context.Context,
	attachmentID string,
	batch domain.Batch,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(batch.ToDelete) > 0 {
			if err := tx.
				Where("establishment_attachment_id = ? AND id IN ?", attachmentID, batch.ToDelete).
				Delete(&models.Commodity{}).Error; err != nil {
				return err
			}
		}

		for _, u := range batch.ToUpdate {
			res := tx.Model(&models.Commodity{}).
				Where("id = ? AND establishment_attachment_id = ?", u.ID, attachmentID).
				Updates(map[string]any{"name": u.Name, "icon": u.Icon})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrCommodityNotFound
			}
		}

		if len(batch.ToCreate) > 0 {
			rows := make([]models.Commodity, 0, len(batch.ToCreate))
			for _, c := range batch.ToCreate {
				rows = append(rows, models.Commodity{
					EstablishmentAttachmentID: attachmentID,
					Name:                      c.Name,
					Icon:                      c.Icon,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if isDuplicateKey(err) {
		return domain.ErrDuplicateName
	}
	return err
}
