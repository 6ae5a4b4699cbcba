package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/pkg/auth/controller"
	"fazenda/pkg/auth/service"
	"fazenda/pkg/errs"
	"fazenda/pkg/flash"
	"fazenda/pkg/middleware"
	"fazenda/pkg/view"
)

type authCtrl struct {
	svc          service.AuthService
	secureCookie bool
}

func NewAuthController(svc service.AuthService, secureCookie bool) controller.AuthController {
	return &authCtrl{svc: svc, secureCookie: secureCookie}
}

func (h *authCtrl) LoginPage(c echo.Context) error {
	return view.Render(c, http.StatusOK, "login", view.Data{"ShowMenu": false})
}

func (h *authCtrl) Login(c echo.Context) error {
	var cred service.Credentials
	if err := c.Bind(&cred); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/")
	}
	sess, err := h.svc.Login(c.Request().Context(), cred)
	if err != nil {
		return view.Outcome(c, err, "", "/")
	}
	middleware.SetSessionCookie(c, sess, h.secureCookie)
	middleware.Logger(c).Info().Str("username", cred.Username).Msg("login")
	return view.Outcome(c, nil, "Welcome, "+sess.User.Username, "/index")
}

func (h *authCtrl) RegisterPage(c echo.Context) error {
	return view.Render(c, http.StatusOK, "register", view.Data{"ShowMenu": false})
}

func (h *authCtrl) Register(c echo.Context) error {
	var cred service.Credentials
	if err := c.Bind(&cred); err != nil {
		return view.Outcome(c, errs.Validation("Invalid form submission"), "", "/register")
	}
	if _, err := h.svc.Register(c.Request().Context(), cred); err != nil {
		return view.Outcome(c, err, "", "/register")
	}
	return view.Outcome(c, nil, "Account created. You can sign in now", "/")
}

func (h *authCtrl) Logout(c echo.Context) error {
	if ck, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.svc.Logout(c.Request().Context(), ck.Value); err != nil {
			middleware.Logger(c).Warn().Err(err).Msg("logout")
		}
	}
	middleware.ClearSessionCookie(c)
	flash.Set(c, flash.Success, "Signed out")
	return c.Redirect(http.StatusSeeOther, "/")
}
