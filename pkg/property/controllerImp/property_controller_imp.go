package controllerImp

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/entities"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/property/service"
	"fazenda/pkg/report"
	"fazenda/pkg/view"
)

// OwnerOptions lists the owners a property can belong to.
type OwnerOptions interface {
	Options(ctx context.Context) ([]entities.Option, error)
}

type PropertyCtrl struct {
	svc    service.PropertyService
	owners OwnerOptions
}

func New(svc service.PropertyService, owners OwnerOptions) *PropertyCtrl {
	return &PropertyCtrl{svc: svc, owners: owners}
}

func (h *PropertyCtrl) List(c echo.Context) error {
	ctx := c.Request().Context()
	owners, err := h.owners.Options(ctx)
	if err != nil {
		return err
	}
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	rows, err := h.svc.ListRows(ctx, order)
	if err != nil {
		return err
	}
	return view.Render(c, http.StatusOK, "propriedades", view.Data{
		"Owners":     owners,
		"Properties": rows,
		"Order":      order,
	})
}

func (h *PropertyCtrl) Create(c echo.Context) error {
	var f service.PropertyForm
	if err := c.Bind(&f); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/propriedades")
	}
	_, err := h.svc.Create(c.Request().Context(), f)
	return view.Outcome(c, err, "Property registered successfully", "/propriedades")
}

// Export downloads the joined listing as a spreadsheet.
func (h *PropertyCtrl) Export(c echo.Context) error {
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	rows, err := h.svc.ListRows(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return report.Attach(c, "propriedades.xlsx", func(w io.Writer) error {
		return report.WriteProperties(w, rows)
	})
}
