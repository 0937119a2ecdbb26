// Package usecase contains the business logic of the booking pipeline:
// search orchestration with degraded-mode fallback, and booking assembly,
// submission, and retrieval.
package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-booking/flight-booking-service/internal/adapter/upstream"
	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// SampleAdvisory is the user-visible message attached to degraded results.
const SampleAdvisory = "No live results available, showing sample flights"

// SearchUseCase defines the flight search operations.
type SearchUseCase interface {
	// Search validates params, queries the upstream API, and normalizes the
	// results. Upstream failure or an empty result set substitutes the bundled
	// sample offers and flags the result as degraded instead of failing.
	Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error)

	// Locations queries airport autocomplete matches for a keyword.
	Locations(ctx context.Context, keyword string) ([]upstream.Location, error)
}

// searchUseCase implements SearchUseCase.
type searchUseCase struct {
	client  upstream.Client
	samples []upstream.RawOffer
	log     zerolog.Logger

	// generation orders overlapping searches: the response for a superseded
	// generation is dropped, so the newest request always wins regardless of
	// upstream resolution order.
	generation atomic.Uint64
}

// NewSearchUseCase creates a SearchUseCase backed by the given upstream client.
// samples is the raw offer set substituted in degraded mode.
func NewSearchUseCase(client upstream.Client, samples []upstream.RawOffer, log zerolog.Logger) SearchUseCase {
	return &searchUseCase{
		client:  client,
		samples: samples,
		log:     log,
	}
}

// Search implements SearchUseCase.Search.
func (uc *searchUseCase) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	start := time.Now()

	params.SetDefaults()

	// Validation short-circuits before any network call.
	if err := params.Validate(); err != nil {
		return nil, err
	}

	gen := uc.generation.Add(1)

	rawOffers, err := uc.client.SearchFlights(ctx, params)

	// A newer search started while this one was in flight; drop this response.
	if uc.generation.Load() != gen {
		uc.log.Debug().Uint64("generation", gen).Msg("Search superseded, dropping response")
		return nil, domain.ErrSearchSuperseded
	}

	result := &domain.SearchResult{
		Params:     params,
		Generation: gen,
	}

	switch {
	case err != nil:
		uc.log.Warn().Err(err).Msg("Upstream search failed, substituting sample offers")
		uc.degrade(result, err.Error())
	case len(rawOffers) == 0:
		uc.log.Info().Msg("Upstream search returned no flights, substituting sample offers")
		uc.degrade(result, "upstream returned no flights")
	default:
		result.Offers = upstream.NormalizeOffers(rawOffers)
	}

	result.SearchTimeMs = time.Since(start).Milliseconds()
	return result, nil
}

// degrade switches the result to the explicit sample-backed branch, retaining
// the error description for display.
func (uc *searchUseCase) degrade(result *domain.SearchResult, cause string) {
	result.Offers = upstream.NormalizeOffers(uc.samples)
	result.Degraded = true
	result.Advisory = SampleAdvisory
	result.UpstreamError = cause
}

// Locations implements SearchUseCase.Locations.
func (uc *searchUseCase) Locations(ctx context.Context, keyword string) ([]upstream.Location, error) {
	locations, err := uc.client.SearchLocations(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []upstream.Location{}
	}
	return locations, nil
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
