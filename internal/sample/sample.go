// Package sample bundles a fixed offer set used as the degraded-mode fallback:
// when the upstream search errors or returns nothing, these offers are
// substituted so the user never lands on an empty-state dead end.
package sample

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
)

//go:embed offers.json
var offersJSON []byte

// RawOffers returns the bundled sample offers in the upstream payload shape,
// so degraded mode exercises the same normalization pipeline as a live search.
func RawOffers() ([]upstream.RawOffer, error) {
	var resp upstream.SearchResponse
	if err := json.Unmarshal(offersJSON, &resp); err != nil {
		return nil, fmt.Errorf("parse bundled sample offers: %w", err)
	}
	return resp.FlightsAvailable, nil
}

// MustRawOffers returns the bundled sample offers or panics.
// The embedded file is validated at test time, so a panic here means a broken build.
func MustRawOffers() []upstream.RawOffer {
	offers, err := RawOffers()
	if err != nil {
		panic(err)
	}
	return offers
}
