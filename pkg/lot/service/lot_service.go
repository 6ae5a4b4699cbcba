package service

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

type LotForm struct {
	PropertyID   string `form:"propriedade_id"`
	AnimalID     string `form:"animal_id"`
	Quantity     string `form:"quantidade"`
	RecordedDate string `form:"data_registro"`
}

type LotService interface {
	Create(ctx context.Context, f LotForm) (*entities.Lot, error)
	ListRows(ctx context.Context, order listing.Order) ([]entities.LotRow, error)
}
