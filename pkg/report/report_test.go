package report

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fazenda/entities"
)

func TestWriteProperties(t *testing.T) {
	var buf bytes.Buffer
	err := WriteProperties(&buf, []entities.PropertyRow{
		{ID: 1, Name: "Fazenda Boa Vista", Municipality: "Uberaba", State: "MG", TotalAreaHa: decimal.RequireFromString("150.5"), OwnerName: "Maria Silva"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Propriedades")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dono", rows[0][5])
	assert.Equal(t, []string{"1", "Fazenda Boa Vista", "Uberaba", "MG", "150.5", "Maria Silva"}, rows[1])
}

func TestWriteCultivations(t *testing.T) {
	planted := entities.NewDate(2024, 10, 1)
	var buf bytes.Buffer
	require.NoError(t, WriteCultivations(&buf, []entities.CultivationRow{
		{ID: 4, PropertyName: "Boa Vista", CropName: "Soja", CultivatedAreaHa: decimal.NewFromInt(40), PlantingDate: &planted},
	}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Cultivos")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-10-01", rows[1][4])
}

func cropSheet(t *testing.T, rows ...[]any) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

func TestReadCrops(t *testing.T) {
	in := cropSheet(t,
		[]any{"Ciclo", " NOME ", "Espécie"},
		[]any{"anual", "Soja", "Glycine max"},
		[]any{"", "", ""},
		[]any{"perene", "Café", ""},
	)
	got, err := ReadCrops(in)
	require.NoError(t, err)
	assert.Equal(t, []CropRecord{
		{Line: 2, Name: "Soja", Species: "Glycine max", Cycle: "anual"},
		{Line: 4, Name: "Café", Cycle: "perene"},
	}, got)
}

func TestReadCropsWithoutNameColumn(t *testing.T) {
	_, err := ReadCrops(cropSheet(t, []any{"species"}, []any{"x"}))
	assert.ErrorIs(t, err, ErrNoNameColumn)

	_, err = ReadCrops(bytes.NewReader([]byte("not a zip")))
	assert.Error(t, err)
}

func TestAttach(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/propriedades/export", nil), rec)

	require.NoError(t, Attach(c, "propriedades.xlsx", func(w io.Writer) error {
		return WriteProperties(w, nil)
	}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "propriedades.xlsx")

	_, err := excelize.OpenReader(rec.Body)
	assert.NoError(t, err)
}
