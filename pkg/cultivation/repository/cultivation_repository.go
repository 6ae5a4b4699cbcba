package repository

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

// RowColumns order the joined listing. The default sorts by property then
// crop name.
var RowColumns = listing.Columns{
	Keys: map[string]string{
		"property": "p.name, cu.name",
		"crop":     "cu.name",
		"area":     "c.cultivated_area_ha",
		"planted":  "c.planting_date",
		"harvest":  "c.expected_harvest_date",
		"id":       "c.id",
	},
	Default:  "property",
	Tiebreak: "c.id",
}

type CultivationRepository interface {
	Create(ctx context.Context, c *entities.Cultivation) error
	ListRows(ctx context.Context, order listing.Order) ([]entities.CultivationRow, error)
}
