package service

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

type CultivationForm struct {
	PropertyID          string `form:"propriedade_id"`
	CropID              string `form:"cultura_id"`
	CultivatedArea      string `form:"area_cultivada"`
	PlantingDate        string `form:"data_plantio"`
	ExpectedHarvestDate string `form:"data_colheita"`
}

type CultivationService interface {
	Create(ctx context.Context, f CultivationForm) (*entities.Cultivation, error)
	ListRows(ctx context.Context, order listing.Order) ([]entities.CultivationRow, error)
}
