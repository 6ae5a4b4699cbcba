package service

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

type CropForm struct {
	Name    string `form:"nome" validate:"required,max=80"`
	Species string `form:"especie" validate:"max=120"`
	Cycle   string `form:"ciclo" validate:"max=40"`
}

type CropService interface {
	Create(ctx context.Context, f CropForm) (*entities.Crop, error)
	// Import validates every row first and stores them together. lines
	// holds the spreadsheet row of each form, used in error messages.
	Import(ctx context.Context, forms []CropForm, lines []int) (int, error)
	List(ctx context.Context, order listing.Order) ([]entities.Crop, error)
	Options(ctx context.Context) ([]entities.Option, error)
}
