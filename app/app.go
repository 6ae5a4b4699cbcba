// Package app assembles the echo server from its repositories, services
// and controllers.
package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"fazenda"
	"fazenda/config"
	"fazenda/database"
	"fazenda/pkg/flash"
	"fazenda/pkg/middleware"
	"fazenda/pkg/view"
	"fazenda/router"

	animalCtrlImp "fazenda/pkg/animal/controllerImp"
	animalRepoImp "fazenda/pkg/animal/repositoryImp"
	animalSvcImp "fazenda/pkg/animal/serviceImp"

	authCtrlImp "fazenda/pkg/auth/controllerImp"
	authRepoImp "fazenda/pkg/auth/repositoryImp"
	authSvcImp "fazenda/pkg/auth/serviceImp"

	cropCtrlImp "fazenda/pkg/crop/controllerImp"
	cropRepoImp "fazenda/pkg/crop/repositoryImp"
	cropSvcImp "fazenda/pkg/crop/serviceImp"

	cultCtrlImp "fazenda/pkg/cultivation/controllerImp"
	cultRepoImp "fazenda/pkg/cultivation/repositoryImp"
	cultSvcImp "fazenda/pkg/cultivation/serviceImp"

	healthCtrlImp "fazenda/pkg/health/controllerImp"

	lotCtrlImp "fazenda/pkg/lot/controllerImp"
	lotRepoImp "fazenda/pkg/lot/repositoryImp"
	lotSvcImp "fazenda/pkg/lot/serviceImp"

	ownerCtrlImp "fazenda/pkg/owner/controllerImp"
	ownerRepoImp "fazenda/pkg/owner/repositoryImp"
	ownerSvcImp "fazenda/pkg/owner/serviceImp"

	propCtrlImp "fazenda/pkg/property/controllerImp"
	propRepoImp "fazenda/pkg/property/repositoryImp"
	propSvcImp "fazenda/pkg/property/serviceImp"
)

// New builds the HTTP server over an already migrated db.
func New(cfg config.AppConfig, db *gorm.DB, log zerolog.Logger) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	// Repos/Services
	ownerSvc := ownerSvcImp.New(ownerRepoImp.New(db))
	propSvc := propSvcImp.New(propRepoImp.New(db))
	cropSvc := cropSvcImp.New(cropRepoImp.New(db))
	cultSvc := cultSvcImp.New(cultRepoImp.New(db), cfg.Dates)
	animalSvc := animalSvcImp.New(animalRepoImp.New(db))
	lotSvc := lotSvcImp.New(lotRepoImp.New(db), cfg.Dates)
	authSvc := authSvcImp.New(authRepoImp.New(db), cfg.SessionTTL, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = errorHandler

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(middleware.RequestID(log))
	e.Use(middleware.Session(authSvc))
	e.Use(echoMiddleware.CSRFWithConfig(echoMiddleware.CSRFConfig{
		TokenLookup:    "form:_csrf",
		CookieName:     "fazenda_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	e.Use(middleware.RequestLogger())

	e.StaticFS("/static", echo.MustSubFS(fazenda.Static, "static"))

	router.New(
		e,
		cfg.RequireLogin,
		loginLimiter(cfg.LoginRate),
		index,
		authCtrlImp.NewAuthController(authSvc, cfg.CookieSecure),
		ownerCtrlImp.New(ownerSvc),
		propCtrlImp.New(propSvc, ownerSvc),
		cropCtrlImp.New(cropSvc),
		cultCtrlImp.New(cultSvc, propSvc, cropSvc),
		animalCtrlImp.New(animalSvc),
		lotCtrlImp.New(lotSvc, propSvc, animalSvc),
		healthCtrlImp.NewHealthCtrl(db, database.Migrate, time.Now()),
	)
	return e, nil
}

func index(c echo.Context) error {
	return view.Render(c, http.StatusOK, "index", nil)
}

// loginLimiter throttles credential posts per client IP.
func loginLimiter(perSecond float64) echo.MiddlewareFunc {
	store := echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     int(perSecond) + 1,
		ExpiresIn: 3 * time.Minute,
	})
	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			flash.Set(c, flash.Warning, "Too many attempts. Please wait a moment and try again")
			return c.Redirect(http.StatusSeeOther, c.Request().URL.Path)
		},
	})
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Something went wrong. Please try again later."
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			msg = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		middleware.Logger(c).Error().Err(err).Str("uri", c.Request().RequestURI).Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = view.Render(c, code, "error", view.Data{"Status": code, "Message": msg})
	}
	if err != nil {
		middleware.Logger(c).Error().Err(err).Msg("render error page")
	}
}
