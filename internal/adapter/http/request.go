// Package http provides the HTTP handler layer for the flight booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"originLocationCode"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destinationLocationCode"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date; empty means one-way
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (1-9)
	Adults int `json:"adults"`

	// Children is the number of child passengers
	Children int `json:"children,omitempty"`

	// Infants is the number of infant passengers
	Infants int `json:"infants,omitempty"`

	// CabinClass is the travel class: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST
	CabinClass string `json:"travelClass"`

	// CurrencyCode is the ISO 4217 pricing currency (default USD)
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// CreateBookingRequest represents the request body for booking submission.
type CreateBookingRequest struct {
	// Travelers holds the completed traveler form records in booking order
	Travelers []domain.Traveler `json:"travelers"`

	// Offer is the selected normalized offer, echoed back from search results
	Offer domain.FlightOffer `json:"offer"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Valid travel classes in the upstream vocabulary.
var validCabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
	"":                true, // Empty is valid (defaults to ECONOMY)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Codes are normalized to uppercase in place.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDates(errs)
	r.validatePassengers(errs)
	r.validateCabinClass(errs)
	r.validateCurrency(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("originLocationCode", "originLocationCode is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("originLocationCode", "originLocationCode must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin
}

func (r *SearchFlightsRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destinationLocationCode", "destinationLocationCode is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destinationLocationCode", "destinationLocationCode must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest
}

func (r *SearchFlightsRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destinationLocationCode", "origin and destination must be different")
	}
}

func (r *SearchFlightsRequest) validateDates(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
	} else if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
	} else if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		errs.Add("departureDate", "departureDate is not a valid date")
	}

	if r.ReturnDate == "" {
		return
	}
	if !datePattern.MatchString(r.ReturnDate) {
		errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
	} else if _, err := time.Parse("2006-01-02", r.ReturnDate); err != nil {
		errs.Add("returnDate", "returnDate is not a valid date")
	} else if r.DepartureDate != "" && r.ReturnDate < r.DepartureDate {
		errs.Add("returnDate", "returnDate must not be before departureDate")
	}
}

func (r *SearchFlightsRequest) validatePassengers(errs *ValidationErrors) {
	if r.Adults < 1 {
		errs.Add("adults", "adults must be at least 1")
		return
	}
	if r.Children < 0 || r.Infants < 0 {
		errs.Add("children", "passenger counts cannot be negative")
		return
	}
	if r.Adults+r.Children > 9 {
		errs.Add("adults", "total passengers cannot exceed 9")
	}
	if r.Infants > r.Adults {
		errs.Add("infants", "infants cannot exceed adults")
	}
}

func (r *SearchFlightsRequest) validateCabinClass(errs *ValidationErrors) {
	if !validCabinClasses[strings.ToUpper(r.CabinClass)] {
		errs.Add("travelClass", "travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
	}
}

func (r *SearchFlightsRequest) validateCurrency(errs *ValidationErrors) {
	if r.CurrencyCode == "" {
		return
	}
	if !currencyPattern.MatchString(strings.ToUpper(r.CurrencyCode)) {
		errs.Add("currencyCode", "currencyCode must be a 3-letter ISO 4217 code")
	}
}

// Validate validates the booking request before it reaches the use case.
// Traveler field completeness is checked by the domain layer; this only
// guards the request structure itself.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Travelers) == 0 {
		errs.Add("travelers", "at least one traveler is required")
	}
	if r.Offer.PricingAdditionalInfo == "" {
		errs.Add("offer", "offer must carry its pricing payload from search results")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
