package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fazenda/entities"
	"fazenda/pkg/animal/repositoryImp"
	"fazenda/pkg/animal/service"
	"fazenda/pkg/dbtest"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
)

func TestCreateAndOptions(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	svc := New(repositoryImp.New(db))

	_, err := svc.Create(ctx, service.AnimalForm{Kind: " suíno ", Breed: "  "})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.AnimalForm{Kind: "bovino", Breed: "Nelore"})
	require.NoError(t, err)

	animals, err := svc.List(ctx, listing.Order{})
	require.NoError(t, err)
	require.Len(t, animals, 2)
	assert.Equal(t, "bovino", animals[0].Kind)
	assert.Equal(t, "suíno", animals[1].Kind)
	assert.Nil(t, animals[1].Breed)

	opts, err := svc.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bovino (Nelore)", "suíno"}, []string{opts[0].Name, opts[1].Name})
}

func TestCreateRequiresKind(t *testing.T) {
	db := dbtest.Open(t)
	_, err := New(repositoryImp.New(db)).Create(context.Background(), service.AnimalForm{Breed: "Nelore"})
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Zero(t, dbtest.Count(t, db, &entities.Animal{}))
}
