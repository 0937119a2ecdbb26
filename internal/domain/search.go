package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

// SearchParams defines the parameters for an outbound flight search.
// It is assembled from user-entered fields plus autocomplete-selected IATA codes.
type SearchParams struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"originLocationCode"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destinationLocationCode"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format; empty for one-way
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (at least 1)
	Adults int `json:"adults"`

	// Children is the number of child passengers
	Children int `json:"children,omitempty"`

	// Infants is the number of infant passengers
	Infants int `json:"infants,omitempty"`

	// CabinClass is the travel class: ECONOMY, PREMIUM_ECONOMY, BUSINESS, or FIRST
	CabinClass string `json:"travelClass"`

	// CurrencyCode is the ISO 4217 currency for pricing (default "USD")
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// iataCodeRegex matches valid IATA airport codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validCabinClasses defines the allowed travel classes in the upstream vocabulary.
var validCabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// Validate checks that every field required for submission is present and
// well-formed. It must pass before any network call is made.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchParams) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
	}

	if s.ReturnDate != "" {
		if !dateRegex.MatchString(s.ReturnDate) {
			return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		if _, err := time.Parse("2006-01-02", s.ReturnDate); err != nil {
			return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, s.ReturnDate)
		}
		if s.ReturnDate < s.DepartureDate {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Children < 0 || s.Infants < 0 {
		return fmt.Errorf("%w: passenger counts cannot be negative", ErrInvalidRequest)
	}
	if s.Adults+s.Children > 9 {
		return fmt.Errorf("%w: total passengers cannot exceed 9", ErrInvalidRequest)
	}
	if s.Infants > s.Adults {
		return fmt.Errorf("%w: infants cannot exceed adults", ErrInvalidRequest)
	}

	if s.CabinClass == "" {
		return fmt.Errorf("%w: travelClass is required", ErrInvalidRequest)
	}
	if !validCabinClasses[s.CabinClass] {
		return fmt.Errorf("%w: travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q",
			ErrInvalidRequest, s.CabinClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchParams) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.CabinClass == "" {
		s.CabinClass = "ECONOMY"
	}
	if s.CurrencyCode == "" {
		s.CurrencyCode = "USD"
	}
}

// TotalTravelers returns the number of traveler records the booking form must collect.
func (s *SearchParams) TotalTravelers() int {
	return s.Adults + s.Children + s.Infants
}

// Query assembles the outbound search query string for the upstream API.
// Call Validate first; Query performs no checking of its own.
func (s *SearchParams) Query() url.Values {
	q := url.Values{}
	q.Set("originLocationCode", s.Origin)
	q.Set("destinationLocationCode", s.Destination)
	q.Set("departureDate", s.DepartureDate)
	if s.ReturnDate != "" {
		q.Set("returnDate", s.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(s.Adults))
	if s.Children > 0 {
		q.Set("children", strconv.Itoa(s.Children))
	}
	if s.Infants > 0 {
		q.Set("infants", strconv.Itoa(s.Infants))
	}
	q.Set("travelClass", s.CabinClass)
	q.Set("currencyCode", s.CurrencyCode)
	return q
}
