package controllerImp

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/entities"
	"fazenda/pkg/cultivation/service"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/report"
	"fazenda/pkg/view"
)

type Options interface {
	Options(ctx context.Context) ([]entities.Option, error)
}

type CultivationCtrl struct {
	svc        service.CultivationService
	properties Options
	crops      Options
}

func New(svc service.CultivationService, properties, crops Options) *CultivationCtrl {
	return &CultivationCtrl{svc: svc, properties: properties, crops: crops}
}

func (h *CultivationCtrl) List(c echo.Context) error {
	ctx := c.Request().Context()
	props, err := h.properties.Options(ctx)
	if err != nil {
		return err
	}
	crops, err := h.crops.Options(ctx)
	if err != nil {
		return err
	}
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	rows, err := h.svc.ListRows(ctx, order)
	if err != nil {
		return err
	}
	return view.Render(c, http.StatusOK, "cultivos", view.Data{
		"Properties":   props,
		"Crops":        crops,
		"Cultivations": rows,
		"Order":        order,
	})
}

func (h *CultivationCtrl) Create(c echo.Context) error {
	var f service.CultivationForm
	if err := c.Bind(&f); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/cultivos")
	}
	_, err := h.svc.Create(c.Request().Context(), f)
	return view.Outcome(c, err, "Cultivation registered successfully", "/cultivos")
}

func (h *CultivationCtrl) Export(c echo.Context) error {
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	rows, err := h.svc.ListRows(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return report.Attach(c, "cultivos.xlsx", func(w io.Writer) error {
		return report.WriteCultivations(w, rows)
	})
}
