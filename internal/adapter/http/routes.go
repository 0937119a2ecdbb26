// Package http provides the HTTP handler layer for the flight booking API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight booking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *BookingHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.GET("/locations/search", h.SearchLocations)
	api.POST("/flights/search", h.SearchFlights)
	api.POST("/pricing/confirm", h.ConfirmPricing)

	bookings := api.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("/:reference", h.GetBooking)
}
