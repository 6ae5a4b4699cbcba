package repositoryImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fazenda/entities"
	"fazenda/pkg/dbtest"
	"fazenda/pkg/errs"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	r := New(db)

	u := &entities.User{Username: "ana", Password: "x"}
	require.NoError(t, r.CreateUser(ctx, u))
	assert.NotZero(t, u.ID)

	err := r.CreateUser(ctx, &entities.User{Username: "ana", Password: "y"})
	assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	assert.EqualValues(t, 1, dbtest.Count(t, db, &entities.User{}))

	found, err := r.FindUser(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = r.FindUser(ctx, "nobody")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
