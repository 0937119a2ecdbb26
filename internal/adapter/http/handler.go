// Package http provides the HTTP handler layer for the flight booking API.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-service/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-service/internal/domain"
	"github.com/flight-booking/flight-booking-service/internal/usecase"
)

// BookingHandler handles HTTP requests for the search and booking endpoints.
type BookingHandler struct {
	search  usecase.SearchUseCase
	booking usecase.BookingUseCase
}

// NewBookingHandler creates a new BookingHandler with the given use cases.
func NewBookingHandler(search usecase.SearchUseCase, booking usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		search:  search,
		booking: booking,
	}
}

// SearchLocations handles GET /api/v1/locations/search
//
// @Summary Search airport locations
// @Description Airport autocomplete matches for a keyword
// @Tags locations
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} upstream.Location
// @Failure 400 {object} response.ErrorDetail "Missing keyword"
// @Failure 503 {object} response.ErrorDetail "Upstream unavailable"
// @Router /api/v1/locations/search [get]
func (h *BookingHandler) SearchLocations(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return response.ValidationErrorWithMessage(c, "keyword is required")
	}

	locations, err := h.search.Locations(c.Request().Context(), keyword)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, locations)
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search bookable flight offers; degrades to the bundled sample set on upstream failure
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search parameters"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [post]
func (h *BookingHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), ToSearchParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// ConfirmPricing handles POST /api/v1/pricing/confirm
//
// @Summary Confirm offer pricing
// @Description Re-price the selected offer prior to booking
// @Tags pricing
// @Accept json
// @Produce json
// @Param offer body domain.FlightOffer true "Selected offer"
// @Success 200 {object} domain.FlightOffer
// @Failure 400 {object} response.ErrorDetail "Offer missing pricing payload"
// @Failure 503 {object} response.ErrorDetail "Upstream unavailable"
// @Router /api/v1/pricing/confirm [post]
func (h *BookingHandler) ConfirmPricing(c echo.Context) error {
	var offer domain.FlightOffer

	if err := c.Bind(&offer); err != nil {
		return response.InvalidRequestBody(c)
	}
	if offer.PricingAdditionalInfo == "" {
		return response.ValidationErrorWithMessage(c, "offer must carry its pricing payload from search results")
	}

	confirmed, err := h.booking.ConfirmPricing(c.Request().Context(), offer)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, confirmed)
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Create a booking
// @Description Validate travelers, assemble the booking payload, and submit the order
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Travelers and selected offer"
// @Success 201 {object} domain.BookingConfirmation
// @Failure 400 {object} response.ErrorDetail "Incomplete traveler record"
// @Failure 503 {object} response.ErrorDetail "Upstream unavailable"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	confirmation, err := h.booking.Book(c.Request().Context(), req.Travelers, req.Offer)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, confirmation)
}

// GetBooking handles GET /api/v1/bookings/:reference
//
// @Summary Retrieve a booking
// @Description Return a stored booking confirmation by reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} domain.BookingConfirmation
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Router /api/v1/bookings/{reference} [get]
func (h *BookingHandler) GetBooking(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return response.ValidationErrorWithMessage(c, "booking reference is required")
	}

	booking, err := h.booking.Retrieve(c.Request().Context(), reference)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, booking)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *BookingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *BookingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *BookingHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrIncompleteTraveler):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.Is(err, domain.ErrBookingNotFound):
		return response.NotFound(c)

	case errors.Is(err, domain.ErrSearchSuperseded):
		// The client already issued a newer search; tell it to keep that one.
		return response.RequestCancelled(c)

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.Is(err, domain.ErrUpstreamTimeout):
		return response.GatewayTimeout(c)

	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return response.ServiceUnavailable(c)
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return response.ServiceUnavailableWithMessage(c, upstreamErr.Error())
	}

	return response.InternalServerError(c)
}
