package commodity

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/property-booking/internal/models"
)

var (
	// ErrCommodityNotFound is returned by HandleCommodityBatch when an
	// update id does not belong to the attachment.
	ErrCommodityNotFound = errors.New("commodity_not_found")

	// ErrDuplicateName is returned on writes that break the
	// (attachment, name) unique index.
	ErrDuplicateName = errors.New("commodity_name_duplicated")
)

type Input struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Update struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Batch is applied as a single unit. Update and delete ids are scoped to
// the attachment.
type Batch struct {
	ToCreate []Input
	ToUpdate []Update
	ToDelete []string
}

func (b Batch) Empty() bool {
	return len(b.ToCreate) == 0 && len(b.ToUpdate) == 0 && len(b.ToDelete) == 0
}

type Repository interface {
	FindCommoditiesByNames(
		ctx context.Context,
		attachmentID string,
		names []string,
	) ([]models.Commodity, error)

	ListCommodities(
		ctx context.Context,
		attachmentID string,
	) ([]models.Commodity, error)

	HandleCommodityBatch(
		ctx context.Context,
		attachmentID string,
		batch Batch,
	) error
}
