package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
)

func TestRawOffers(t *testing.T) {
	offers, err := RawOffers()
	require.NoError(t, err)
	require.NotEmpty(t, offers)

	// Every bundled offer must survive normalization with usable itineraries,
	// since these are what the user sees when the upstream is down.
	for _, raw := range offers {
		normalized := upstream.Normalize(raw)
		assert.NotEmpty(t, normalized.ID)
		require.NotEmpty(t, normalized.Trips)
		for _, trip := range normalized.Trips {
			assert.NotEmpty(t, trip.Legs)
			assert.NotEmpty(t, trip.From)
			assert.NotEmpty(t, trip.To)
		}
		assert.NotEmpty(t, normalized.PricingAdditionalInfo)
	}
}

func TestMustRawOffers(t *testing.T) {
	assert.NotPanics(t, func() {
		offers := MustRawOffers()
		assert.NotEmpty(t, offers)
	})
}
