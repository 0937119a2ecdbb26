package domain

// SearchResult is the outcome of a flight search, including the explicit
// degraded-mode branch: when the upstream search errors or returns nothing,
// the bundled sample offer set is substituted and Degraded is set, so callers
// can surface the advisory message without treating it as true success.
type SearchResult struct {
	// Params echoes the search parameters that produced this result
	Params SearchParams `json:"searchParams"`

	// Offers holds the normalized offers, sample-backed in degraded mode
	Offers []FlightOffer `json:"offers"`

	// Degraded is true when sample data was substituted for upstream results
	Degraded bool `json:"degraded"`

	// Advisory is the user-visible message explaining a degraded result
	// (e.g., "showing sample flights"); empty on a clean search.
	Advisory string `json:"advisory,omitempty"`

	// UpstreamError retains the descriptive error that triggered degradation
	UpstreamError string `json:"upstreamError,omitempty"`

	// Generation is the request-generation token assigned to this search.
	// A response carrying a stale generation was superseded and dropped.
	Generation uint64 `json:"-"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// BookingConfirmation is the stored record of a completed booking.
type BookingConfirmation struct {
	// Reference is the upstream order identifier used for retrieval
	Reference string `json:"reference"`

	// ClientReference is the identifier generated by this service for correlation
	ClientReference string `json:"clientReference"`

	// Travelers echoes the booked traveler records in submission order
	Travelers []Traveler `json:"travelers"`

	// Offer is the normalized offer that was booked
	Offer FlightOffer `json:"offer"`

	// CreatedAt is the booking creation time as an RFC3339 string
	CreatedAt string `json:"createdAt"`
}
