package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/pkg/crop/service"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/report"
	"fazenda/pkg/view"
)

// maxUpload bounds crop spreadsheets.
const maxUpload = 5 << 20

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	order := listing.FromQuery(c.QueryParam("order"), c.QueryParam("dir"))
	crops, err := h.svc.List(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return view.Render(c, http.StatusOK, "culturas", view.Data{"Crops": crops, "Order": order})
}

func (h *CropCtrl) Create(c echo.Context) error {
	var f service.CropForm
	if err := c.Bind(&f); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/culturas")
	}
	_, err := h.svc.Create(c.Request().Context(), f)
	return view.Outcome(c, err, "Crop registered successfully", "/culturas")
}

// Import creates crops from an uploaded xlsx file.
func (h *CropCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return view.Outcome(c, errs.Validation("Choose a spreadsheet to import"), "", "/culturas")
	}
	if fh.Size > maxUpload {
		return view.Outcome(c, errs.Validation("The spreadsheet is too large"), "", "/culturas")
	}
	file, err := fh.Open()
	if err != nil {
		return view.Outcome(c, errs.Storage(err), "", "/culturas")
	}
	defer file.Close()

	records, err := report.ReadCrops(file)
	if err != nil {
		return view.Outcome(c, errs.Validation("Could not read the spreadsheet: "+err.Error()), "", "/culturas")
	}
	forms := make([]service.CropForm, len(records))
	lines := make([]int, len(records))
	for i, r := range records {
		forms[i] = service.CropForm{Name: r.Name, Species: r.Species, Cycle: r.Cycle}
		lines[i] = r.Line
	}
	n, err := h.svc.Import(c.Request().Context(), forms, lines)
	return view.Outcome(c, err, fmt.Sprintf("%d crops imported", n), "/culturas")
}
