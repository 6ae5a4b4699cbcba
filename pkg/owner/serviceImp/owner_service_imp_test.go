package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fazenda/entities"
	"fazenda/pkg/errs"
	"fazenda/pkg/listing"
	"fazenda/pkg/owner/service"
)

type fakeRepo struct {
	created []*entities.Owner
	err     error
	order   listing.Order
}

func (f *fakeRepo) Create(_ context.Context, o *entities.Owner) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, o)
	return nil
}

func (f *fakeRepo) List(_ context.Context, order listing.Order) ([]entities.Owner, error) {
	f.order = order
	return []entities.Owner{}, nil
}

func (f *fakeRepo) Options(context.Context) ([]entities.Option, error) { return nil, nil }

func TestCreateTrimsAndMapsOptionalFields(t *testing.T) {
	repo := &fakeRepo{}
	o, err := New(repo).Create(context.Background(), service.OwnerForm{
		Name: "  Maria Silva ", TaxID: " 123.456.789-00", Email: "   ", Phone: " 34 9999-0000 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", o.Name)
	assert.Equal(t, "123.456.789-00", o.TaxID)
	assert.Nil(t, o.Email)
	require.NotNil(t, o.Phone)
	assert.Equal(t, "34 9999-0000", *o.Phone)
	assert.Len(t, repo.created, 1)
}

func TestCreateValidatesBeforeStorage(t *testing.T) {
	tests := []struct {
		name string
		form service.OwnerForm
	}{
		{"missing name", service.OwnerForm{TaxID: "1"}},
		{"blank tax id", service.OwnerForm{Name: "Maria", TaxID: "   "}},
		{"bad email", service.OwnerForm{Name: "Maria", TaxID: "1", Email: "maria@"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			_, err := New(repo).Create(context.Background(), tt.form)
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Empty(t, repo.created)
		})
	}
}

func TestCreatePassesRepositoryErrors(t *testing.T) {
	storage := errs.Storage(errors.New("disk I/O error"))
	_, err := New(&fakeRepo{err: storage}).Create(context.Background(), service.OwnerForm{Name: "Maria", TaxID: "1"})
	assert.ErrorIs(t, err, errs.ErrStorage)
}

func TestListResolvesUnknownOrder(t *testing.T) {
	repo := &fakeRepo{}
	_, err := New(repo).List(context.Background(), listing.Order{Key: "phone", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, listing.Order{Key: "name", Desc: true}, repo.order)
}
