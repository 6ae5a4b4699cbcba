package serviceImp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fazenda/entities"
	"fazenda/pkg/auth/repositoryImp"
	"fazenda/pkg/auth/service"
	"fazenda/pkg/dbtest"
	"fazenda/pkg/errs"
)

func newSvc(t *testing.T) (*authSvc, *gorm.DB) {
	db := dbtest.Open(t)
	svc := New(repositoryImp.New(db), time.Hour, zerolog.Nop()).(*authSvc)
	return svc, db
}

func TestRegisterStoresBcryptHash(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, service.Credentials{Username: " ana ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)

	var stored entities.User
	require.NoError(t, db.First(&stored, u.ID).Error)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))

	sess, err := svc.Login(ctx, service.Credentials{Username: "ana", Password: "s3cret"})
	require.NoError(t, err)
	assert.Len(t, sess.Token, 36)
	assert.Equal(t, u.ID, sess.UserID)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, service.Credentials{Username: "ana", Password: "one"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, service.Credentials{Username: "ana", Password: "two"})
	assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	assert.Equal(t, "This username is already taken", errs.Message(err))
	assert.EqualValues(t, 1, dbtest.Count(t, db, &entities.User{}))
}

func TestRegisterValidation(t *testing.T) {
	svc, db := newSvc(t)
	_, err := svc.Register(context.Background(), service.Credentials{Username: "  ", Password: ""})
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, errs.Message(err), "username is required")
	assert.Contains(t, errs.Message(err), "password is required")

	_, err = svc.Register(context.Background(), service.Credentials{Username: "ana", Password: strings.Repeat("x", 73)})
	assert.ErrorIs(t, err, errs.ErrValidation)

	// 40 runes, 80 bytes
	_, err = svc.Register(context.Background(), service.Credentials{Username: "ana", Password: strings.Repeat("é", 40)})
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, "Validation failed: password must not exceed 72 bytes", errs.Message(err))
	assert.Zero(t, dbtest.Count(t, db, &entities.User{}))
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, service.Credentials{Username: "ana", Password: "right"})
	require.NoError(t, err)

	for _, cred := range []service.Credentials{
		{Username: "ana", Password: "wrong"},
		{Username: "nobody", Password: "right"},
	} {
		_, err := svc.Login(ctx, cred)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials, cred.Username)
		assert.Equal(t, "Invalid username or password", errs.Message(err))
	}
}

func TestLoginRehashesLegacyPlaintext(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&entities.User{Username: "legacy", Password: "plain"}).Error)

	_, err := svc.Login(ctx, service.Credentials{Username: "legacy", Password: "nope"})
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = svc.Login(ctx, service.Credentials{Username: "legacy", Password: "plain"})
	require.NoError(t, err)

	var stored entities.User
	require.NoError(t, db.Where("username = ?", "legacy").First(&stored).Error)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plain")))

	// the hash keeps working
	_, err = svc.Login(ctx, service.Credentials{Username: "legacy", Password: "plain"})
	assert.NoError(t, err)
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, service.Credentials{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	sess, err := svc.Login(ctx, service.Credentials{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	_, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Zero(t, dbtest.Count(t, db, &entities.Session{}))
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, service.Credentials{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	sess, err := svc.Login(ctx, service.Credentials{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	svc.now = func() time.Time { return sess.ExpiresAt.Add(time.Second) }
	_, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Zero(t, dbtest.Count(t, db, &entities.Session{}))
}

func TestLoginPurgesExpiredSessions(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, service.Credentials{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	first, err := svc.Login(ctx, service.Credentials{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	svc.now = func() time.Time { return first.ExpiresAt.Add(time.Minute) }
	_, err = svc.Login(ctx, service.Credentials{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, dbtest.Count(t, db, &entities.Session{}))
}
