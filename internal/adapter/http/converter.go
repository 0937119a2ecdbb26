// Package http provides the HTTP handler layer for the flight booking API.
package http

import (
	"strings"

	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// ToSearchParams converts a validated SearchFlightsRequest to domain.SearchParams.
func ToSearchParams(req *SearchFlightsRequest) domain.SearchParams {
	cabin := strings.ToUpper(req.CabinClass)
	if cabin == "" {
		cabin = "ECONOMY"
	}

	currency := strings.ToUpper(req.CurrencyCode)
	if currency == "" {
		currency = "USD"
	}

	adults := req.Adults
	if adults < 1 {
		adults = 1
	}

	return domain.SearchParams{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        adults,
		Children:      req.Children,
		Infants:       req.Infants,
		CabinClass:    cabin,
		CurrencyCode:  currency,
	}
}
