package repository

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

var Columns = listing.Columns{
	Keys: map[string]string{
		"name":  "name",
		"id":    "id",
		"state": "state",
		"area":  "total_area_ha",
	},
	Default:  "name",
	Tiebreak: "id",
}

// RowColumns order the joined listing.
var RowColumns = listing.Columns{
	Keys: map[string]string{
		"name":  "p.name",
		"id":    "p.id",
		"state": "p.state",
		"area":  "p.total_area_ha",
		"owner": "o.name",
	},
	Default:  "name",
	Tiebreak: "p.id",
}

type PropertyRepository interface {
	Create(ctx context.Context, p *entities.Property) error
	List(ctx context.Context, order listing.Order) ([]entities.Property, error)
	ListRows(ctx context.Context, order listing.Order) ([]entities.PropertyRow, error)
	Options(ctx context.Context) ([]entities.Option, error)
}
