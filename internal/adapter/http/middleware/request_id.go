// Package middleware provides HTTP middleware for cross-cutting concerns:
// request correlation, request logging, and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header used for request correlation.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey is the context key for the stored request ID.
	requestIDKey = "request_id"

	// maxRequestIDLength caps client-supplied correlation ids so a hostile
	// header cannot bloat every log line of the request.
	maxRequestIDLength = 64
)

// RequestID returns middleware that propagates or generates request IDs.
// A well-formed incoming X-Request-ID is reused so the mobile client can
// correlate its own traces; otherwise a new UUID is generated. The ID is
// stored in the context and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" || len(reqID) > maxRequestIDLength {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
