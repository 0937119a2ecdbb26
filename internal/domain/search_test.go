package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() SearchParams {
	return SearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-09-14",
		Adults:        1,
		CabinClass:    "ECONOMY",
		CurrencyCode:  "USD",
	}
}

func TestSearchParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SearchParams)
		wantErr string
	}{
		{
			name:   "valid one-way",
			modify: func(p *SearchParams) {},
		},
		{
			name: "valid round trip",
			modify: func(p *SearchParams) {
				p.ReturnDate = "2026-09-21"
			},
		},
		{
			name: "missing origin",
			modify: func(p *SearchParams) {
				p.Origin = ""
			},
			wantErr: "origin is required",
		},
		{
			name: "lowercase origin",
			modify: func(p *SearchParams) {
				p.Origin = "jfk"
			},
			wantErr: "origin must be a valid 3-letter IATA code",
		},
		{
			name: "missing destination",
			modify: func(p *SearchParams) {
				p.Destination = ""
			},
			wantErr: "destination is required",
		},
		{
			name: "same origin and destination",
			modify: func(p *SearchParams) {
				p.Destination = "JFK"
			},
			wantErr: "origin and destination must be different",
		},
		{
			name: "missing departure date",
			modify: func(p *SearchParams) {
				p.DepartureDate = ""
			},
			wantErr: "departureDate is required",
		},
		{
			name: "malformed departure date",
			modify: func(p *SearchParams) {
				p.DepartureDate = "14-09-2026"
			},
			wantErr: "departureDate must be in YYYY-MM-DD format",
		},
		{
			name: "impossible departure date",
			modify: func(p *SearchParams) {
				p.DepartureDate = "2026-02-30"
			},
			wantErr: "departureDate is not a valid date",
		},
		{
			name: "return before departure",
			modify: func(p *SearchParams) {
				p.ReturnDate = "2026-09-01"
			},
			wantErr: "returnDate must not be before departureDate",
		},
		{
			name: "zero adults",
			modify: func(p *SearchParams) {
				p.Adults = 0
			},
			wantErr: "adults must be at least 1",
		},
		{
			name: "too many passengers",
			modify: func(p *SearchParams) {
				p.Adults = 5
				p.Children = 5
			},
			wantErr: "total passengers cannot exceed 9",
		},
		{
			name: "more infants than adults",
			modify: func(p *SearchParams) {
				p.Infants = 2
			},
			wantErr: "infants cannot exceed adults",
		},
		{
			name: "unknown cabin class",
			modify: func(p *SearchParams) {
				p.CabinClass = "COACH"
			},
			wantErr: "travelClass must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.modify(&params)

			err := params.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchParams_SetDefaults(t *testing.T) {
	params := SearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-09-14",
	}
	params.SetDefaults()

	assert.Equal(t, 1, params.Adults)
	assert.Equal(t, "ECONOMY", params.CabinClass)
	assert.Equal(t, "USD", params.CurrencyCode)
}

func TestSearchParams_SetDefaultsKeepsExplicitValues(t *testing.T) {
	params := SearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-09-14",
		Adults:        2,
		CabinClass:    "BUSINESS",
		CurrencyCode:  "EUR",
	}
	params.SetDefaults()

	assert.Equal(t, 2, params.Adults)
	assert.Equal(t, "BUSINESS", params.CabinClass)
	assert.Equal(t, "EUR", params.CurrencyCode)
}

func TestSearchParams_TotalTravelers(t *testing.T) {
	params := SearchParams{Adults: 2, Children: 1, Infants: 1}
	assert.Equal(t, 4, params.TotalTravelers())
}

func TestSearchParams_Query(t *testing.T) {
	params := validParams()
	params.ReturnDate = "2026-09-21"
	params.Children = 1

	q := params.Query()

	assert.Equal(t, "JFK", q.Get("originLocationCode"))
	assert.Equal(t, "LHR", q.Get("destinationLocationCode"))
	assert.Equal(t, "2026-09-14", q.Get("departureDate"))
	assert.Equal(t, "2026-09-21", q.Get("returnDate"))
	assert.Equal(t, "1", q.Get("adults"))
	assert.Equal(t, "1", q.Get("children"))
	assert.Equal(t, "ECONOMY", q.Get("travelClass"))
	assert.Equal(t, "USD", q.Get("currencyCode"))

	// Zero optional counts are omitted entirely.
	_, hasInfants := q["infants"]
	assert.False(t, hasInfants)
}
