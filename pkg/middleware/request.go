package middleware

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// RequestID reuses the incoming X-Request-ID or generates one, and stores a
// request-scoped logger carrying it.
func RequestID(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)

			l := base.With().Str("request_id", id).Logger()
			c.Set(loggerKey, &l)
			c.SetRequest(c.Request().WithContext(l.WithContext(c.Request().Context())))
			return next(c)
		}
	}
}

func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

// Logger returns the request logger, or a no-op logger outside RequestID.
func Logger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(loggerKey).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

// RequestLogger writes one line per request. 5xx is logged at error, 4xx
// at warn.
func RequestLogger() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			status := v.Status
			var he *echo.HTTPError
			if v.Error != nil && errors.As(v.Error, &he) {
				status = he.Code
			}

			log := Logger(c)
			var ev *zerolog.Event
			switch {
			case status >= 500:
				ev = log.Error().Err(v.Error)
			case status >= 400:
				ev = log.Warn()
			default:
				ev = log.Info()
			}
			if u := CurrentUser(c); u != nil {
				ev = ev.Str("user", u.Username)
			}
			ev.Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Msg("request")
			return nil
		},
	})
}
