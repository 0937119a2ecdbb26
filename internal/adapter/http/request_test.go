package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/flight-booking-service/internal/domain"
)

func validSearchRequest() SearchFlightsRequest {
	return SearchFlightsRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-09-14",
		Adults:        1,
	}
}

func TestSearchFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*SearchFlightsRequest)
		wantField string
	}{
		{
			name:   "valid minimal request",
			modify: func(r *SearchFlightsRequest) {},
		},
		{
			name: "valid with all optional fields",
			modify: func(r *SearchFlightsRequest) {
				r.ReturnDate = "2026-09-21"
				r.Children = 1
				r.Infants = 1
				r.CabinClass = "BUSINESS"
				r.CurrencyCode = "EUR"
			},
		},
		{
			name: "missing origin",
			modify: func(r *SearchFlightsRequest) {
				r.Origin = ""
			},
			wantField: "originLocationCode",
		},
		{
			name: "origin too long",
			modify: func(r *SearchFlightsRequest) {
				r.Origin = "JFKX"
			},
			wantField: "originLocationCode",
		},
		{
			name: "same origin and destination",
			modify: func(r *SearchFlightsRequest) {
				r.Destination = "jfk"
			},
			wantField: "destinationLocationCode",
		},
		{
			name: "missing departure date",
			modify: func(r *SearchFlightsRequest) {
				r.DepartureDate = ""
			},
			wantField: "departureDate",
		},
		{
			name: "malformed departure date",
			modify: func(r *SearchFlightsRequest) {
				r.DepartureDate = "2026/09/14"
			},
			wantField: "departureDate",
		},
		{
			name: "return before departure",
			modify: func(r *SearchFlightsRequest) {
				r.ReturnDate = "2026-09-01"
			},
			wantField: "returnDate",
		},
		{
			name: "zero adults",
			modify: func(r *SearchFlightsRequest) {
				r.Adults = 0
			},
			wantField: "adults",
		},
		{
			name: "too many passengers",
			modify: func(r *SearchFlightsRequest) {
				r.Adults = 9
				r.Children = 1
			},
			wantField: "adults",
		},
		{
			name: "more infants than adults",
			modify: func(r *SearchFlightsRequest) {
				r.Infants = 2
			},
			wantField: "infants",
		},
		{
			name: "unknown cabin class",
			modify: func(r *SearchFlightsRequest) {
				r.CabinClass = "COACH"
			},
			wantField: "travelClass",
		},
		{
			name: "bad currency code",
			modify: func(r *SearchFlightsRequest) {
				r.CurrencyCode = "DOLLARS"
			},
			wantField: "currencyCode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearchRequest()
			tt.modify(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs *ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Contains(t, validationErrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchFlightsRequest_ValidateNormalizesCodes(t *testing.T) {
	req := SearchFlightsRequest{
		Origin:        "jfk",
		Destination:   "lhr",
		DepartureDate: "2026-09-14",
		Adults:        1,
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, "JFK", req.Origin)
	assert.Equal(t, "LHR", req.Destination)
}

func TestSearchFlightsRequest_ValidateCollectsMultipleErrors(t *testing.T) {
	req := SearchFlightsRequest{}

	err := req.Validate()
	require.Error(t, err)

	var validationErrs *ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "originLocationCode")
	assert.Contains(t, fields, "destinationLocationCode")
	assert.Contains(t, fields, "departureDate")
	assert.Contains(t, fields, "adults")
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	valid := CreateBookingRequest{
		Travelers: []domain.Traveler{{FirstName: "ADA"}},
		Offer:     domain.FlightOffer{PricingAdditionalInfo: `{"id":"offer-1"}`},
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("no travelers", func(t *testing.T) {
		req := valid
		req.Travelers = nil

		err := req.Validate()
		require.Error(t, err)
		var validationErrs *ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Contains(t, validationErrs.ToMap(), "travelers")
	})

	t.Run("offer missing pricing payload", func(t *testing.T) {
		req := valid
		req.Offer = domain.FlightOffer{}

		err := req.Validate()
		require.Error(t, err)
		var validationErrs *ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Contains(t, validationErrs.ToMap(), "offer")
	})
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("field", "field is required")
	assert.Equal(t, "field is required", errs.Error())
	assert.True(t, errs.HasErrors())
}
