// Package testutil provides shared fixtures and helpers for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FutureDate returns a date string the given number of days ahead in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// ValidSearchParams returns search parameters that pass validation.
func ValidSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: FutureDate(30),
		Adults:        1,
		CabinClass:    "ECONOMY",
		CurrencyCode:  "USD",
	}
}

// CompleteTraveler returns a traveler record with every required field filled.
func CompleteTraveler() domain.Traveler {
	return domain.Traveler{
		FirstName:   "ADA",
		LastName:    "LOVELACE",
		Gender:      "FEMALE",
		Email:       "ada@example.com",
		DateOfBirth: "1990-12-10",
		Phone: domain.Phone{
			CountryCallingCode: "44",
			Number:             "7700900123",
		},
		Document: domain.Document{
			Type:            "PASSPORT",
			Number:          "P1234567",
			ExpiryDate:      "2031-05-01",
			IssuanceCountry: "GB",
			Nationality:     "GB",
		},
	}
}

// DirectRawOffer returns a one-itinerary, one-segment raw offer as the
// upstream API would return it.
func DirectRawOffer() upstream.RawOffer {
	return upstream.RawOffer{
		ID:                    "offer-1",
		OneWay:                true,
		NumberOfBookableSeats: 4,
		Itineraries: []upstream.RawItinerary{
			{
				Duration: "PT7H20M",
				Segments: []upstream.RawSegment{
					{
						ID:          "1",
						Number:      "117",
						CarrierCode: "BA",
						Aircraft:    &upstream.RawAircraft{Code: "77W"},
						Departure: upstream.RawEndpoint{
							IATACode: "JFK",
							Terminal: "7",
							At:       "2026-09-14T18:30:00",
						},
						Arrival: upstream.RawEndpoint{
							IATACode: "LHR",
							Terminal: "5",
							At:       "2026-09-15T06:50:00",
						},
						Duration: "PT7H20M",
					},
				},
			},
		},
		Price: &upstream.RawPrice{
			Currency: "USD",
			Base:     "412.00",
			Total:    "534.60",
		},
		TravelerPricings: []upstream.RawTravelerPricing{
			{
				TravelerID: "1",
				FareDetailsBySegment: []upstream.RawFareDetail{
					{SegmentID: "1", Cabin: "ECONOMY"},
				},
			},
		},
	}
}

// ConnectingRawOffer returns a raw offer with one itinerary of two segments
// joined by a layover.
func ConnectingRawOffer() upstream.RawOffer {
	return upstream.RawOffer{
		ID:                    "offer-2",
		OneWay:                true,
		NumberOfBookableSeats: 2,
		Itineraries: []upstream.RawItinerary{
			{
				Duration: "PT10H5M",
				Segments: []upstream.RawSegment{
					{
						ID:          "10",
						Number:      "104",
						CarrierCode: "EI",
						Aircraft:    &upstream.RawAircraft{Code: "32A"},
						Departure: upstream.RawEndpoint{
							IATACode: "JFK",
							Terminal: "4",
							At:       "2026-09-14T20:00:00",
						},
						Arrival: upstream.RawEndpoint{
							IATACode: "DUB",
							At:       "2026-09-15T02:30:00",
						},
						Duration: "PT6H30M",
					},
					{
						ID:          "11",
						Number:      "152",
						CarrierCode: "EI",
						Operating:   &upstream.RawOperating{CarrierCode: "BA"},
						Aircraft:    &upstream.RawAircraft{Code: "320"},
						Departure: upstream.RawEndpoint{
							IATACode: "DUB",
							Terminal: "2",
							At:       "2026-09-15T04:05:00",
						},
						Arrival: upstream.RawEndpoint{
							IATACode: "LHR",
							Terminal: "2",
							At:       "2026-09-15T05:25:00",
						},
						Duration: "PT1H20M",
					},
				},
			},
		},
		Price: &upstream.RawPrice{
			Currency: "USD",
			Base:     "280.00",
			Total:    "352.18",
		},
		TravelerPricings: []upstream.RawTravelerPricing{
			{
				TravelerID: "1",
				FareDetailsBySegment: []upstream.RawFareDetail{
					{SegmentID: "10", Cabin: "ECONOMY"},
					{SegmentID: "11", Cabin: "ECONOMY"},
				},
			},
		},
	}
}
