package repository

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

var RowColumns = listing.Columns{
	Keys: map[string]string{
		"property": "p.name",
		"animal":   "a.kind",
		"quantity": "l.quantity",
		"date":     "l.recorded_date",
		"id":       "l.id",
	},
	Default:  "property",
	Tiebreak: "l.id",
}

type LotRepository interface {
	Create(ctx context.Context, l *entities.Lot) error
	ListRows(ctx context.Context, order listing.Order) ([]entities.LotRow, error)
}
