package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/pkg/animal/service"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/view"
)

type AnimalCtrl struct{ svc service.AnimalService }

func New(svc service.AnimalService) *AnimalCtrl { return &AnimalCtrl{svc} }

func (h *AnimalCtrl) List(c echo.Context) error {
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	animals, err := h.svc.List(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return view.Render(c, http.StatusOK, "animais", view.Data{"Animals": animals, "Order": order})
}

func (h *AnimalCtrl) Create(c echo.Context) error {
	var f service.AnimalForm
	if err := c.Bind(&f); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/animais")
	}
	_, err := h.svc.Create(c.Request().Context(), f)
	return view.Outcome(c, err, "Animal registered successfully", "/animais")
}
