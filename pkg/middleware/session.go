package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/entities"
	"fazenda/pkg/flash"
)

const (
	SessionCookie = "fazenda_session"

	userKey = "user"
)

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// Session loads the user of the session cookie, if any. Unknown or expired
// tokens clear the cookie and continue anonymously.
func Session(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookie)
			if err != nil || ck.Value == "" {
				return next(c)
			}
			u, err := auth.Authenticate(c.Request().Context(), ck.Value)
			if err != nil || u == nil {
				ClearSessionCookie(c)
				return next(c)
			}
			c.Set(userKey, u)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to the login page. When
// enabled=false it simply passes through.
func RequireLogin(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled || CurrentUser(c) != nil {
				return next(c)
			}
			flash.Set(c, flash.Warning, "Please sign in to continue")
			return c.Redirect(http.StatusSeeOther, "/")
		}
	}
}

func CurrentUser(c echo.Context) *entities.User {
	u, _ := c.Get(userKey).(*entities.User)
	return u
}

func SetSessionCookie(c echo.Context, s *entities.Session, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}
