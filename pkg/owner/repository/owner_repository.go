package repository

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

// Columns are the order keys accepted for the owner list.
var Columns = listing.Columns{
	Keys:     map[string]string{"name": "name", "id": "id", "tax_id": "tax_id", "created_at": "created_at"},
	Default:  "name",
	Tiebreak: "id",
}

type OwnerRepository interface {
	Create(ctx context.Context, o *entities.Owner) error
	List(ctx context.Context, order listing.Order) ([]entities.Owner, error)
	Options(ctx context.Context) ([]entities.Option, error)
}
