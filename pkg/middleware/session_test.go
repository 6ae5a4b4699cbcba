package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fazenda/entities"
)

type fakeAuth map[string]*entities.User

func (f fakeAuth) Authenticate(_ context.Context, token string) (*entities.User, error) {
	if u, ok := f[token]; ok {
		return u, nil
	}
	return nil, errors.New("no session")
}

func serve(t *testing.T, e *echo.Echo, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/owners", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newEcho(required bool) *echo.Echo {
	e := echo.New()
	e.Use(Session(fakeAuth{"tok": {ID: 1, Username: "ana"}}))
	e.GET("/owners", func(c echo.Context) error {
		name := ""
		if u := CurrentUser(c); u != nil {
			name = u.Username
		}
		return c.String(http.StatusOK, "hello "+name)
	}, RequireLogin(required))
	return e
}

func TestSessionLoadsUser(t *testing.T) {
	rec := serve(t, newEcho(true), "tok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello ana", rec.Body.String())
}

func TestSessionClearsUnknownToken(t *testing.T) {
	rec := serve(t, newEcho(false), "stale")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello ", rec.Body.String())

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookie {
			cleared = ck.MaxAge < 0
		}
	}
	assert.True(t, cleared)
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	rec := serve(t, newEcho(true), "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireLoginDisabledPassesThrough(t *testing.T) {
	rec := serve(t, newEcho(false), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDPropagates(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(zerolog.Nop()))
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		require.NotNil(t, Logger(c))
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}
