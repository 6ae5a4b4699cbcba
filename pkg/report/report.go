// Package report writes listings to xlsx spreadsheets and reads crop
// sheets uploaded for bulk import.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"fazenda/entities"
)

const (
	xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheet    = "Sheet1"
)

// Attach renders a workbook with fn and sends it as a download.
func Attach(c echo.Context, filename string, fn func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func WriteProperties(w io.Writer, rows []entities.PropertyRow) error {
	return write(w, "Propriedades",
		[]any{"ID", "Nome", "Município", "UF", "Área total (ha)", "Dono"},
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{r.ID, r.Name, r.Municipality, r.State, r.TotalAreaHa.InexactFloat64(), r.OwnerName}
		})
}

func WriteCultivations(w io.Writer, rows []entities.CultivationRow) error {
	return write(w, "Cultivos",
		[]any{"ID", "Propriedade", "Cultura", "Área cultivada (ha)", "Plantio", "Colheita prevista"},
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{r.ID, r.PropertyName, r.CropName, r.CultivatedAreaHa.InexactFloat64(), dateCell(r.PlantingDate), dateCell(r.ExpectedHarvestDate)}
		})
}

func dateCell(d *entities.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func write(w io.Writer, name string, header []any, n int, row func(i int) []any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(sheet, name); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row(i)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// CropRecord is one data row of an uploaded crop sheet. Line is the
// spreadsheet row number, for error messages.
type CropRecord struct {
	Line    int
	Name    string
	Species string
	Cycle   string
}

var ErrNoNameColumn = errors.New("spreadsheet has no name column")

// ReadCrops reads the first sheet of an xlsx file. The header row may use
// Portuguese or English names in any case; blank rows are skipped.
func ReadCrops(r io.Reader) ([]CropRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoNameColumn
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoNameColumn
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cName := findAny("nome", "cultura", "name", "crop")
	cSpecies := findAny("especie", "espécie", "species")
	cCycle := findAny("ciclo", "cycle")
	if cName == -1 {
		return nil, ErrNoNameColumn
	}

	var out []CropRecord
	for i, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		cr := CropRecord{Line: i + 2, Name: get(cName), Species: get(cSpecies), Cycle: get(cCycle)}
		if cr.Name == "" && cr.Species == "" && cr.Cycle == "" {
			continue
		}
		out = append(out, cr)
	}
	return out, nil
}
