package controllerImp

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/entities"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/lot/service"
	"fazenda/pkg/view"
)

type Options interface {
	Options(ctx context.Context) ([]entities.Option, error)
}

type LotCtrl struct {
	svc        service.LotService
	properties Options
	animals    Options
}

func New(svc service.LotService, properties, animals Options) *LotCtrl {
	return &LotCtrl{svc: svc, properties: properties, animals: animals}
}

func (h *LotCtrl) List(c echo.Context) error {
	ctx := c.Request().Context()
	props, err := h.properties.Options(ctx)
	if err != nil {
		return err
	}
	animals, err := h.animals.Options(ctx)
	if err != nil {
		return err
	}
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	lots, err := h.svc.ListRows(ctx, order)
	if err != nil {
		return err
	}
	return view.Render(c, http.StatusOK, "lotes", view.Data{
		"Properties": props,
		"Animals":    animals,
		"Lots":       lots,
		"Order":      order,
	})
}

func (h *LotCtrl) Create(c echo.Context) error {
	var f service.LotForm
	if err := c.Bind(&f); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/lotes")
	}
	_, err := h.svc.Create(c.Request().Context(), f)
	return view.Outcome(c, err, "Lot registered successfully", "/lotes")
}
