package service

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

type AnimalForm struct {
	Kind  string `form:"tipo" validate:"required,max=60"`
	Breed string `form:"raca" validate:"max=60"`
}

type AnimalService interface {
	Create(ctx context.Context, f AnimalForm) (*entities.Animal, error)
	List(ctx context.Context, order listing.Order) ([]entities.Animal, error)
	// Options labels each animal as "kind (breed)".
	Options(ctx context.Context) ([]entities.Option, error)
}
