package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the middleware stack on the Echo instance. The order
// matters: RequestID runs first so every later log line carries the
// correlation id, then RequestLogger, then Recover wrapping the handlers.
// Call before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}
