package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-booking/flight-booking-service/internal/adapter/http/response"
)

// RecoveryConfig controls panic recovery behavior.
type RecoveryConfig struct {
	// DisablePrintStack disables logging the stack trace with the panic
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error,
// leaving the server free to handle subsequent requests.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.Error().
						Str("request_id", GetRequestID(c)).
						Str("path", c.Request().URL.Path).
						Str("panic", panicMsg)

					if !config.DisablePrintStack {
						event = event.Str("stack", string(debug.Stack()))
					}

					event.Msg("Panic recovered")

					// The generic error body avoids leaking internal details.
					if !c.Response().Committed {
						_ = response.InternalServerError(c)
					}
				}
			}()

			return next(c)
		}
	}
}
