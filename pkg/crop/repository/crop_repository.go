package repository

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

var Columns = listing.Columns{
	Keys:     map[string]string{"name": "name", "species": "species", "cycle": "cycle", "id": "id"},
	Default:  "name",
	Tiebreak: "id",
}

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	// CreateBatch inserts all crops in one transaction, or none.
	CreateBatch(ctx context.Context, crops []*entities.Crop) error
	List(ctx context.Context, order listing.Order) ([]entities.Crop, error)
	Options(ctx context.Context) ([]entities.Option, error)
}
