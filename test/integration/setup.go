// Package integration provides helpers and integration tests for the flight
// booking service. These tests exercise the HTTP layer, use cases, and
// booking store together, with only the upstream client mocked.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	bookinghttp "github.com/flight-booking/flight-booking-service/internal/adapter/http"
	"github.com/flight-booking/flight-booking-service/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
	"github.com/flight-booking/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-service/internal/sample"
	"github.com/flight-booking/flight-booking-service/internal/store"
	"github.com/flight-booking/flight-booking-service/internal/usecase"
)

// TestServer wraps an Echo instance with the full application stack wired
// against the given upstream client.
type TestServer struct {
	Echo     *echo.Echo
	Bookings *store.MemoryStore
	Clock    *timeutil.MockClock
}

// NewTestServer builds the service with an in-memory booking store and a
// fixed clock. The upstream client is the only injected dependency.
func NewTestServer(client upstream.Client) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	log := zerolog.Nop()
	bookings := store.NewMemoryStore()
	clock := timeutil.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	searchUC := usecase.NewSearchUseCase(client, sample.MustRawOffers(), log)
	bookingUC := usecase.NewBookingUseCase(client, bookings, clock, log)

	handler := bookinghttp.NewBookingHandler(searchUC, bookingUC)
	bookinghttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Bookings: bookings,
		Clock:    clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a flight search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// BookingRequest posts a booking creation with the given body.
func (ts *TestServer) BookingRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings",
		Body:   body,
	})
}

// GetBookingRequest fetches a booking by reference.
func (ts *TestServer) GetBookingRequest(reference string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/bookings/" + reference,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// unmarshalBody decodes a response body into the given value.
func unmarshalBody(r Response, v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseError parses an error response body into the ErrorDetail shape.
func (r *Response) ParseError() (response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return response.ErrorDetail{}, err
	}
	return detail, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"originLocationCode"`
	Destination   string `json:"destinationLocationCode"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	CabinClass    string `json:"travelClass,omitempty"`
	CurrencyCode  string `json:"currencyCode,omitempty"`
}
