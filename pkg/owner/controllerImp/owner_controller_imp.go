package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/owner/service"
	"fazenda/pkg/view"
)

type OwnerCtrl struct{ svc service.OwnerService }

func New(svc service.OwnerService) *OwnerCtrl { return &OwnerCtrl{svc} }

func (h *OwnerCtrl) List(c echo.Context) error {
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	owners, err := h.svc.List(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return view.Render(c, http.StatusOK, "owners", view.Data{
		"Owners": owners,
		"Order":  order,
	})
}

func (h *OwnerCtrl) Create(c echo.Context) error {
	var f service.OwnerForm
	if err := c.Bind(&f); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/owners")
	}
	_, err := h.svc.Create(c.Request().Context(), f)
	return view.Outcome(c, err, "Owner registered successfully", "/owners")
}
