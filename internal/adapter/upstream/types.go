// Package upstream adapts the heterogeneous, loosely-typed payloads of the
// upstream flight/pricing API into the service's typed domain model. The raw
// payload is parsed once at this boundary into explicitly-optional structures;
// everything past the normalizer operates on fully-typed domain values.
package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SearchResponse is the upstream search envelope.
type SearchResponse struct {
	FlightsAvailable []RawOffer `json:"flightsAvailable"`
}

// RawOffer is one priced itinerary as the upstream API returns it.
// Optional objects are pointers so absence is distinguishable from emptiness.
type RawOffer struct {
	ID                    string               `json:"id,omitempty"`
	OneWay                bool                 `json:"oneWay"`
	NumberOfBookableSeats int                  `json:"numberOfBookableSeats"`
	Itineraries           []RawItinerary       `json:"itineraries"`
	Price                 *RawPrice            `json:"price,omitempty"`
	TravelerPricings      []RawTravelerPricing `json:"travelerPricings,omitempty"`
}

// RawItinerary is one directional journey in a raw offer.
type RawItinerary struct {
	Duration string       `json:"duration,omitempty"`
	Segments []RawSegment `json:"segments"`
}

// RawSegment is a single flight within an itinerary.
type RawSegment struct {
	ID          string        `json:"id,omitempty"`
	Number      string        `json:"number,omitempty"`
	CarrierCode string        `json:"carrierCode,omitempty"`
	Aircraft    *RawAircraft  `json:"aircraft,omitempty"`
	Operating   *RawOperating `json:"operating,omitempty"`
	Departure   RawEndpoint   `json:"departure"`
	Arrival     RawEndpoint   `json:"arrival"`
	Duration    string        `json:"duration,omitempty"`
}

// RawAircraft carries the equipment code of a segment.
type RawAircraft struct {
	Code string `json:"code,omitempty"`
}

// RawOperating identifies the operating carrier when it differs from the
// marketing carrier.
type RawOperating struct {
	CarrierCode string `json:"carrierCode,omitempty"`
}

// RawEndpoint is a departure or arrival point of a segment.
type RawEndpoint struct {
	IATACode string `json:"iataCode,omitempty"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at,omitempty"`
}

// RawPrice carries offer pricing as decimal strings, kept verbatim.
type RawPrice struct {
	Currency string `json:"currency,omitempty"`
	Total    string `json:"total,omitempty"`
	Base     string `json:"base,omitempty"`
}

// RawTravelerPricing carries per-traveler fare details.
type RawTravelerPricing struct {
	TravelerID           string          `json:"travelerId,omitempty"`
	FareOption           string          `json:"fareOption,omitempty"`
	TravelerType         string          `json:"travelerType,omitempty"`
	FareDetailsBySegment []RawFareDetail `json:"fareDetailsBySegment,omitempty"`
}

// RawFareDetail is the fare detail for one segment of one traveler.
type RawFareDetail struct {
	SegmentID string `json:"segmentId,omitempty"`
	Cabin     string `json:"cabin,omitempty"`
	Class     string `json:"class,omitempty"`
}

// LocationsResponse is the upstream airport autocomplete envelope.
type LocationsResponse struct {
	LocationResponses []Location `json:"locationResponses"`
}

// Location is one autocomplete match from the upstream locations endpoint.
type Location struct {
	Name      string         `json:"name,omitempty"`
	SubType   string         `json:"subType,omitempty"`
	GroupData *LocationGroup `json:"group_data,omitempty"`
}

// LocationGroup carries the airports grouped under a city match.
type LocationGroup struct {
	SimpleAirports []SimpleAirport `json:"simpleAirports,omitempty"`
}

// SimpleAirport is a single selectable airport in an autocomplete group.
type SimpleAirport struct {
	Name     string `json:"name,omitempty"`
	IATACode string `json:"iataCode,omitempty"`
}

// DecodeOffer parses a raw offer that may arrive either as a JSON object or as
// a string-encoded JSON document (the upstream sometimes pre-serializes the
// offer it echoes back). Both paths land on the same typed structure.
func DecodeOffer(data []byte) (RawOffer, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return RawOffer{}, fmt.Errorf("decode offer: empty payload")
	}

	// String-encoded path: unwrap, then fall through to the object path.
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return RawOffer{}, fmt.Errorf("decode offer: unwrap string payload: %w", err)
		}
		data = []byte(inner)
	}

	var offer RawOffer
	if err := json.Unmarshal(data, &offer); err != nil {
		return RawOffer{}, fmt.Errorf("decode offer: %w", err)
	}
	return offer, nil
}

// EncodeOffer serializes a raw offer for retention in
// domain.FlightOffer.PricingAdditionalInfo.
func EncodeOffer(offer RawOffer) string {
	data, err := json.Marshal(offer)
	if err != nil {
		// Marshal of the typed structure cannot realistically fail.
		return ""
	}
	return string(data)
}
