package repository

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

var Columns = listing.Columns{
	Keys:     map[string]string{"kind": "kind", "breed": "breed", "id": "id"},
	Default:  "kind",
	Tiebreak: "id",
}

type AnimalRepository interface {
	Create(ctx context.Context, a *entities.Animal) error
	List(ctx context.Context, order listing.Order) ([]entities.Animal, error)
}
