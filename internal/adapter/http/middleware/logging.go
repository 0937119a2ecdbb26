package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// quietPrefixes lists path prefixes excluded from request logging.
// Health probes and the swagger UI would otherwise dominate the log stream.
var quietPrefixes = []string{"/health", "/swagger"}

// RequestLogger returns middleware that logs each HTTP request on completion
// with method, path, status, duration, and client info. The log level follows
// the response status: 5xx at error, 4xx at warn, everything else at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler shape the response first, so the
				// logged status matches what the client received.
				c.Error(err)
			}

			req := c.Request()
			if isQuietPath(req.URL.Path) {
				return nil
			}

			res := c.Response()
			status := res.Status

			var event *zerolog.Event
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Msg("HTTP request")

			// The error was already handled via c.Error.
			return nil
		}
	}
}

// isQuietPath reports whether the path is excluded from request logging.
func isQuietPath(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
