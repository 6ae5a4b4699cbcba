package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenPop(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	Set(e.NewContext(httptest.NewRequest(http.MethodPost, "/owners", nil), rec), Danger, "An owner with this tax ID already exists")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/owners", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	m := Pop(e.NewContext(req, rec))
	require.NotNil(t, m)
	assert.Equal(t, Danger, m.Category)
	assert.Equal(t, "An owner with this tax ID already exists", m.Text)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestPopWithoutCookie(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, Pop(c))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%"})
	assert.Nil(t, Pop(e.NewContext(req, httptest.NewRecorder())))
}
