package view

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fazenda/pkg/errs"
	"fazenda/pkg/flash"
	"fazenda/pkg/middleware"
)

// StorageMessage is shown for faults the user cannot fix.
const StorageMessage = "Could not save the record. Please try again later."

// Outcome flashes the result of a write and redirects to target with 303.
func Outcome(c echo.Context, err error, success, target string) error {
	switch errs.KindOf(err) {
	case errs.KindNone:
		flash.Set(c, flash.Success, success)
	case errs.KindValidation:
		flash.Set(c, flash.Warning, errs.Message(err))
	case errs.KindConstraint, errs.KindDuplicateUser, errs.KindInvalidCredentials, errs.KindNotFound:
		flash.Set(c, flash.Danger, errs.Message(err))
	default:
		middleware.Logger(c).Error().Err(err).Str("path", c.Path()).Msg("unexpected storage failure")
		flash.Set(c, flash.Danger, StorageMessage)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
