package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	LoginPage(c echo.Context) error
	Login(c echo.Context) error
	RegisterPage(c echo.Context) error
	Register(c echo.Context) error
	Logout(c echo.Context) error
}
