// Package domain contains the core business entities and rules for the flight booking service.
// These entities are the stable internal contract consumed by every screen-facing endpoint,
// independent of the upstream API's payload shapes.
package domain

// FlightOffer is the normalized, priced, bookable itinerary produced by the
// normalization pipeline. It is the shape the UI renders and the shape a user
// selects when moving on to booking.
type FlightOffer struct {
	// ID is a unique identifier for this offer (generated internally)
	ID string `json:"id"`

	// OneWay is true when the offer has no return trip
	OneWay bool `json:"oneWay"`

	// SeatsAvailable is the number of bookable seats reported upstream
	SeatsAvailable int `json:"seatsAvailable"`

	// CurrencyCode is the ISO 4217 currency code (e.g., "USD")
	CurrencyCode string `json:"currencyCode"`

	// BasePrice is the fare before taxes and fees, kept verbatim as a decimal string
	BasePrice string `json:"basePrice"`

	// TotalPrice is the full price, kept verbatim as a decimal string
	TotalPrice string `json:"totalPrice"`

	// TotalTravelers is the number of traveler records required at booking time
	TotalTravelers int `json:"totalTravelers"`

	// Trips holds one directional itinerary per journey (outbound, return)
	Trips []Trip `json:"trips"`

	// PricingAdditionalInfo is the serialized original raw offer, retained so
	// booking-time derivations (cabin class lookup, repricing) can re-parse it.
	PricingAdditionalInfo string `json:"pricingAdditionalInfo,omitempty"`
}

// Trip is one directional itinerary composed of one or more legs.
type Trip struct {
	// From is the IATA code of the first departure airport
	From string `json:"from"`

	// To is the IATA code of the final arrival airport
	To string `json:"to"`

	// Stops is the number of intermediate stops (segments - 1, never negative)
	Stops int `json:"stops"`

	// TotalFlightDuration is the itinerary duration as an ISO-8601 string (e.g., "PT6H20M")
	TotalFlightDuration string `json:"totalFlightDuration"`

	// TotalLayoverDuration is the summed ground time formatted as "XhYm"
	TotalLayoverDuration string `json:"totalLayoverDuration"`

	// Legs holds the individual flights in order
	Legs []Leg `json:"legs"`
}

// Leg is a single flight between two airports with one flight number.
type Leg struct {
	// LegNo is the composite "trip-segment" identifier, 1-based (e.g., "1-2")
	LegNo string `json:"legNo"`

	// FlightNumber is the carrier-assigned number (e.g., "6733")
	FlightNumber string `json:"flightNumber"`

	// CarrierCode is the marketing carrier's two-character IATA code
	CarrierCode string `json:"carrierCode"`

	// CarrierName is the resolved airline display name (falls back to the code)
	CarrierName string `json:"carrierName"`

	// OperatingCarrierCode is the operating carrier, falling back to CarrierCode
	OperatingCarrierCode string `json:"operatingCarrierCode"`

	// AircraftCode is the upstream equipment code (e.g., "32Q")
	AircraftCode string `json:"aircraftCode"`

	// AircraftName is the resolved aircraft model name (falls back to the code)
	AircraftName string `json:"aircraftName"`

	// CabinClass is the booking class for this leg (default "Economy")
	CabinClass string `json:"cabinClass"`

	// DepartureAirport is the IATA code of the departure airport
	DepartureAirport string `json:"departureAirport"`

	// DepartureCity is the resolved city name for the departure airport
	DepartureCity string `json:"departureCity"`

	// DepartureTerminal is the departure terminal, "N/A" when not reported
	DepartureTerminal string `json:"departureTerminal"`

	// DepartureDateTime is the scheduled departure as an ISO datetime string
	DepartureDateTime string `json:"departureDateTime"`

	// ArrivalAirport is the IATA code of the arrival airport
	ArrivalAirport string `json:"arrivalAirport"`

	// ArrivalCity is the resolved city name for the arrival airport
	ArrivalCity string `json:"arrivalCity"`

	// ArrivalTerminal is the arrival terminal, "N/A" when not reported
	ArrivalTerminal string `json:"arrivalTerminal"`

	// ArrivalDateTime is the scheduled arrival as an ISO datetime string
	ArrivalDateTime string `json:"arrivalDateTime"`

	// Duration is the leg duration as an ISO-8601 string
	Duration string `json:"duration"`

	// LayoverAfter is the formatted ground time before the next leg's departure.
	// It is nil on the last leg of a trip.
	LayoverAfter *string `json:"layoverAfter"`
}

// IsDirect reports whether the trip has no intermediate stops.
func (t *Trip) IsDirect() bool {
	return t.Stops == 0
}

// LastLeg returns the final leg of the trip, or nil for an empty trip.
func (t *Trip) LastLeg() *Leg {
	if len(t.Legs) == 0 {
		return nil
	}
	return &t.Legs[len(t.Legs)-1]
}
