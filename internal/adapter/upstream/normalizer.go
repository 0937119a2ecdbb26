package upstream

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-service/internal/domain"
	"github.com/flight-booking/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-service/internal/lookup"
)

// DefaultCabinClass is used when no fare detail matches a leg.
const DefaultCabinClass = "Economy"

// DefaultTerminal is used when the upstream omits a terminal.
const DefaultTerminal = "N/A"

// DefaultCurrency is used when the upstream omits the price object.
const DefaultCurrency = "USD"

// NormalizeOffers converts a slice of raw offers into the internal FlightOffer
// shape. Normalization is best-effort per offer and never aborts the search flow.
func NormalizeOffers(rawOffers []RawOffer) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(rawOffers))
	for _, raw := range rawOffers {
		result = append(result, Normalize(raw))
	}
	return result
}

// Normalize converts a single raw offer into the internal FlightOffer shape,
// resolving code lookups, deriving layovers, and retaining the serialized raw
// offer for booking-time re-derivation.
func Normalize(raw RawOffer) domain.FlightOffer {
	offer := domain.FlightOffer{
		ID:                    raw.ID,
		OneWay:                raw.OneWay,
		SeatsAvailable:        raw.NumberOfBookableSeats,
		CurrencyCode:          DefaultCurrency,
		BasePrice:             "0",
		TotalPrice:            "0",
		TotalTravelers:        1,
		Trips:                 make([]domain.Trip, 0, len(raw.Itineraries)),
		PricingAdditionalInfo: EncodeOffer(raw),
	}

	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}

	if raw.Price != nil {
		if raw.Price.Currency != "" {
			offer.CurrencyCode = raw.Price.Currency
		}
		if raw.Price.Base != "" {
			offer.BasePrice = raw.Price.Base
		}
		if raw.Price.Total != "" {
			offer.TotalPrice = raw.Price.Total
		}
	}

	if len(raw.TravelerPricings) > 0 {
		offer.TotalTravelers = len(raw.TravelerPricings)
	}

	for idx, itinerary := range raw.Itineraries {
		offer.Trips = append(offer.Trips, normalizeTrip(idx, itinerary, raw.TravelerPricings))
	}

	return offer
}

// normalizeTrip derives one Trip from an itinerary at the given trip index.
func normalizeTrip(idx int, itinerary RawItinerary, pricings []RawTravelerPricing) domain.Trip {
	segments := itinerary.Segments

	trip := domain.Trip{
		Stops:               maxInt(0, len(segments)-1),
		TotalFlightDuration: itinerary.Duration,
		Legs:                make([]domain.Leg, 0, len(segments)),
	}

	if len(segments) > 0 {
		trip.From = segments[0].Departure.IATACode
		trip.To = segments[len(segments)-1].Arrival.IATACode
	}

	var totalLayover time.Duration
	for segIdx, seg := range segments {
		leg := normalizeLeg(idx, segIdx, seg, pricings)

		if segIdx < len(segments)-1 {
			layover, gap := layoverToNext(seg, segments[segIdx+1])
			leg.LayoverAfter = &layover
			totalLayover += gap
		}

		trip.Legs = append(trip.Legs, leg)
	}

	trip.TotalLayoverDuration = timeutil.FormatElapsed(totalLayover)
	return trip
}

// normalizeLeg derives one Leg from a segment at the given trip/segment indexes.
func normalizeLeg(tripIdx, segIdx int, seg RawSegment, pricings []RawTravelerPricing) domain.Leg {
	legNo := fmt.Sprintf("%d-%d", tripIdx+1, segIdx+1)

	operating := seg.CarrierCode
	if seg.Operating != nil && seg.Operating.CarrierCode != "" {
		operating = seg.Operating.CarrierCode
	}

	var aircraftCode string
	if seg.Aircraft != nil {
		aircraftCode = seg.Aircraft.Code
	}

	return domain.Leg{
		LegNo:                legNo,
		FlightNumber:         seg.Number,
		CarrierCode:          seg.CarrierCode,
		CarrierName:          lookup.CarrierName(seg.CarrierCode),
		OperatingCarrierCode: operating,
		AircraftCode:         aircraftCode,
		AircraftName:         lookup.AircraftName(aircraftCode),
		CabinClass:           cabinForSegment(pricings, seg.ID, legNo),
		DepartureAirport:     seg.Departure.IATACode,
		DepartureCity:        lookup.AirportCity(seg.Departure.IATACode),
		DepartureTerminal:    terminalOrDefault(seg.Departure.Terminal),
		DepartureDateTime:    seg.Departure.At,
		ArrivalAirport:       seg.Arrival.IATACode,
		ArrivalCity:          lookup.AirportCity(seg.Arrival.IATACode),
		ArrivalTerminal:      terminalOrDefault(seg.Arrival.Terminal),
		ArrivalDateTime:      seg.Arrival.At,
		Duration:             seg.Duration,
	}
}

// layoverToNext computes the formatted ground time between a segment's arrival
// and the next segment's departure, plus the raw gap for trip totals.
// Unparseable timestamps yield the clamped "0h 0m" so a subsequent leg always
// carries a formatted layover.
func layoverToNext(current, next RawSegment) (string, time.Duration) {
	arrival, errA := timeutil.ParseDateTime(current.Arrival.At)
	departure, errD := timeutil.ParseDateTime(next.Departure.At)
	if errA != nil || errD != nil {
		return timeutil.FormatElapsed(0), 0
	}

	gap := timeutil.Elapsed(arrival, departure)
	return timeutil.FormatElapsed(gap), gap
}

// cabinForSegment resolves the cabin class for a leg from the first traveler's
// fare details, matching on the upstream segment id or the composite leg number.
func cabinForSegment(pricings []RawTravelerPricing, segmentID, legNo string) string {
	if len(pricings) == 0 {
		return DefaultCabinClass
	}

	for _, fd := range pricings[0].FareDetailsBySegment {
		if fd.SegmentID == "" {
			continue
		}
		if fd.SegmentID == segmentID || fd.SegmentID == legNo {
			if fd.Cabin != "" {
				return fd.Cabin
			}
		}
	}
	return DefaultCabinClass
}

// terminalOrDefault substitutes the display default for missing terminals.
func terminalOrDefault(terminal string) string {
	if terminal == "" {
		return DefaultTerminal
	}
	return terminal
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
