package service

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

// PropertyForm is the submitted property form. Area and owner arrive as
// text and are parsed by the service.
type PropertyForm struct {
	Name         string `form:"nome" validate:"required,max=120"`
	Municipality string `form:"municipio" validate:"required,max=120"`
	State        string `form:"estado" validate:"required,len=2,alpha"`
	TotalArea    string `form:"area_total"`
	OwnerID      string `form:"dono_id"`
}

type PropertyService interface {
	Create(ctx context.Context, f PropertyForm) (*entities.Property, error)
	List(ctx context.Context, order listing.Order) ([]entities.Property, error)
	ListRows(ctx context.Context, order listing.Order) ([]entities.PropertyRow, error)
	Options(ctx context.Context) ([]entities.Option, error)
}
