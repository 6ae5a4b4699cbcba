package serviceImp

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fazenda/entities"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/property/service"
)

type fakeRepo struct {
	calls int
}

func (f *fakeRepo) Create(_ context.Context, p *entities.Property) error {
	f.calls++
	return nil
}

func (f *fakeRepo) List(context.Context, listing.Order) ([]entities.Property, error) {
	return []entities.Property{}, nil
}

func (f *fakeRepo) ListRows(context.Context, listing.Order) ([]entities.PropertyRow, error) {
	return []entities.PropertyRow{}, nil
}

func (f *fakeRepo) Options(context.Context) ([]entities.Option, error) { return nil, nil }

func valid() service.PropertyForm {
	return service.PropertyForm{
		Name: "Fazenda Boa Vista", Municipality: "Uberaba", State: "mg",
		TotalArea: "150.5", OwnerID: "1",
	}
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	p, err := New(repo).Create(context.Background(), valid())
	require.NoError(t, err)
	assert.Equal(t, "MG", p.State)
	assert.True(t, decimal.RequireFromString("150.5").Equal(p.TotalAreaHa))
	assert.Equal(t, uint(1), p.OwnerID)
	assert.Equal(t, 1, repo.calls)
}

func TestCreateRejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *service.PropertyForm)
	}{
		{"negative area", func(f *service.PropertyForm) { f.TotalArea = "-3" }},
		{"non-numeric area", func(f *service.PropertyForm) { f.TotalArea = "muito" }},
		{"missing area", func(f *service.PropertyForm) { f.TotalArea = " " }},
		{"missing owner", func(f *service.PropertyForm) { f.OwnerID = "" }},
		{"bad owner id", func(f *service.PropertyForm) { f.OwnerID = "abc" }},
		{"state too long", func(f *service.PropertyForm) { f.State = "MGS" }},
		{"missing municipality", func(f *service.PropertyForm) { f.Municipality = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid()
			tt.mutate(&f)
			repo := &fakeRepo{}
			_, err := New(repo).Create(context.Background(), f)
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Zero(t, repo.calls)
		})
	}
}
