package serviceImp

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fazenda/entities"
	"fazenda/pkg/cultivation/repositoryImp"
	"fazenda/pkg/cultivation/service"
	"fazenda/pkg/dbtest"
	"fazenda/pkg/errs"
	"fazenda/pkg/form"
	"fazenda/pkg/listing"
)

type ids struct{ boaVista, alegre, soja, milho uint }

func seed(t *testing.T, db *gorm.DB) ids {
	t.Helper()
	owner := entities.Owner{Name: "Maria Silva", TaxID: "1"}
	require.NoError(t, db.Create(&owner).Error)
	props := []entities.Property{
		{Name: "Sítio Alegre", Municipality: "Franca", State: "SP", TotalAreaHa: decimal.NewFromInt(20), OwnerID: owner.ID},
		{Name: "Boa Vista", Municipality: "Uberaba", State: "MG", TotalAreaHa: decimal.NewFromInt(150), OwnerID: owner.ID},
	}
	require.NoError(t, db.Create(&props).Error)
	crops := []entities.Crop{{Name: "Soja"}, {Name: "Milho"}}
	require.NoError(t, db.Create(&crops).Error)
	return ids{boaVista: props[1].ID, alegre: props[0].ID, soja: crops[0].ID, milho: crops[1].ID}
}

func str(v uint) string { return fmt.Sprint(v) }

func TestCreateAndListRows(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	id := seed(t, db)
	svc := New(repositoryImp.New(db), form.Strict)

	for _, f := range []service.CultivationForm{
		{PropertyID: str(id.alegre), CropID: str(id.milho), CultivatedArea: "5"},
		{PropertyID: str(id.boaVista), CropID: str(id.soja), CultivatedArea: "40,25", PlantingDate: "2024-10-01", ExpectedHarvestDate: "2025-02-15"},
		{PropertyID: str(id.boaVista), CropID: str(id.milho), CultivatedArea: "10"},
	} {
		_, err := svc.Create(ctx, f)
		require.NoError(t, err)
	}

	rows, err := svc.ListRows(ctx, listing.Order{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.PropertyName + "/" + r.CropName
	}
	assert.Equal(t, []string{"Boa Vista/Milho", "Boa Vista/Soja", "Sítio Alegre/Milho"}, got)

	soja := rows[1]
	assert.True(t, decimal.RequireFromString("40.25").Equal(soja.CultivatedAreaHa))
	require.NotNil(t, soja.PlantingDate)
	assert.Equal(t, "2024-10-01", soja.PlantingDate.String())
	assert.Equal(t, "2025-02-15", soja.ExpectedHarvestDate.String())
	assert.Nil(t, rows[0].PlantingDate)
}

func TestCreateRejects(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	id := seed(t, db)
	svc := New(repositoryImp.New(db), form.Strict)

	tests := []struct {
		name string
		form service.CultivationForm
		want error
	}{
		{"negative area", service.CultivationForm{PropertyID: str(id.alegre), CropID: str(id.soja), CultivatedArea: "-1"}, errs.ErrValidation},
		{"harvest before planting", service.CultivationForm{PropertyID: str(id.alegre), CropID: str(id.soja), CultivatedArea: "1", PlantingDate: "2024-10-01", ExpectedHarvestDate: "2024-09-01"}, errs.ErrValidation},
		{"unknown crop", service.CultivationForm{PropertyID: str(id.alegre), CropID: "999", CultivatedArea: "1"}, errs.ErrConstraint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.form)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, dbtest.Count(t, db, &entities.Cultivation{}))
}
