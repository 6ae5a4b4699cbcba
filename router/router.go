package router

import (
	"github.com/labstack/echo/v4"

	"fazenda/pkg/middleware"
)

type crud interface {
	List(echo.Context) error
	Create(echo.Context) error
}

func New(
	e *echo.Echo,
	requireLogin bool,
	loginLimit echo.MiddlewareFunc,
	index echo.HandlerFunc,
	authCtrl interface {
		LoginPage(echo.Context) error
		Login(echo.Context) error
		RegisterPage(echo.Context) error
		Register(echo.Context) error
		Logout(echo.Context) error
	},
	ownerCtrl crud,
	propertyCtrl interface {
		crud
		Export(echo.Context) error
	},
	cropCtrl interface {
		crud
		Import(echo.Context) error
	},
	cultivationCtrl interface {
		crud
		Export(echo.Context) error
	},
	animalCtrl crud,
	lotCtrl crud,
	healthCtrl interface {
		Health(echo.Context) error
		InitDB(echo.Context) error
	},
) *echo.Echo {
	e.GET("/", authCtrl.LoginPage)
	e.POST("/", authCtrl.Login, loginLimit)
	e.GET("/register", authCtrl.RegisterPage)
	e.POST("/register", authCtrl.Register, loginLimit)
	e.GET("/logout", authCtrl.Logout)
	e.GET("/health", healthCtrl.Health)

	app := e.Group("", middleware.RequireLogin(requireLogin))
	app.GET("/index", index)
	app.GET("/initdb", healthCtrl.InitDB)

	app.GET("/owners", ownerCtrl.List)
	app.POST("/owners", ownerCtrl.Create)
	app.POST("/owners/create", ownerCtrl.Create)

	app.GET("/propriedades", propertyCtrl.List)
	app.POST("/propriedades", propertyCtrl.Create)
	app.GET("/propriedades/export", propertyCtrl.Export)

	app.GET("/culturas", cropCtrl.List)
	app.POST("/culturas", cropCtrl.Create)
	app.POST("/culturas/import", cropCtrl.Import)

	app.GET("/cultivos", cultivationCtrl.List)
	app.POST("/cultivos", cultivationCtrl.Create)
	app.GET("/cultivos/export", cultivationCtrl.Export)

	app.GET("/animais", animalCtrl.List)
	app.POST("/animais", animalCtrl.Create)

	app.GET("/lotes", lotCtrl.List)
	app.POST("/lotes", lotCtrl.Create)
	return e
}
