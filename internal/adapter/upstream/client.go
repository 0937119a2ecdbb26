package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/flight-booking/flight-booking-service/internal/domain"
	"github.com/flight-booking/flight-booking-service/internal/infrastructure/retry"
)

//go:generate mockgen -source=client.go -destination=../../../test/mock/upstream.go -package=mock

// Client is the contract this service depends on from the upstream flight API.
type Client interface {
	// SearchLocations queries airport autocomplete matches for a keyword.
	SearchLocations(ctx context.Context, keyword string) ([]Location, error)

	// SearchFlights queries bookable offers for the given, already-validated params.
	SearchFlights(ctx context.Context, params domain.SearchParams) ([]RawOffer, error)

	// ConfirmPricing re-prices a selected offer prior to booking.
	ConfirmPricing(ctx context.Context, offer RawOffer) (RawOffer, error)

	// CreateOrder submits a booking. It is never retried automatically.
	CreateOrder(ctx context.Context, req OrderRequest) (OrderResponse, error)

	// GetOrder retrieves a booking by its upstream reference.
	GetOrder(ctx context.Context, reference string) (OrderResponse, error)
}

// Config holds the HTTP client settings for the upstream API.
type Config struct {
	// BaseURL is the upstream API root (no trailing slash)
	BaseURL string

	// APIKey is sent as a bearer token when non-empty
	APIKey string

	// Timeout bounds each HTTP request
	Timeout time.Duration

	// RequestsPerSecond throttles outbound calls
	RequestsPerSecond float64

	// Burst is the rate limiter burst size
	Burst int
}

// DefaultConfig returns sensible client defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:           10 * time.Second,
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// HTTPClient implements Client against the real upstream API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryCfg   retry.Config
	log        zerolog.Logger
}

// NewHTTPClient creates a Client with retry and rate limiting wired in.
func NewHTTPClient(cfg Config, log zerolog.Logger) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig().RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultConfig().Burst
	}

	retryCfg := retry.UpstreamConfig
	retryCfg.RetryIf = domain.IsRetryable

	return &HTTPClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		retryCfg:   retryCfg,
		log:        log,
	}
}

// SearchLocations implements Client.SearchLocations with retry.
func (c *HTTPClient) SearchLocations(ctx context.Context, keyword string) ([]Location, error) {
	q := url.Values{}
	q.Set("keyword", keyword)

	return retry.DoWithResult(ctx, func() ([]Location, error) {
		var resp LocationsResponse
		if err := c.get(ctx, "locations/search", q, &resp); err != nil {
			return nil, err
		}
		return resp.LocationResponses, nil
	}, c.retryCfg)
}

// SearchFlights implements Client.SearchFlights with retry.
func (c *HTTPClient) SearchFlights(ctx context.Context, params domain.SearchParams) ([]RawOffer, error) {
	return retry.DoWithResult(ctx, func() ([]RawOffer, error) {
		var resp SearchResponse
		if err := c.get(ctx, "flights/search", params.Query(), &resp); err != nil {
			return nil, err
		}
		return resp.FlightsAvailable, nil
	}, c.retryCfg)
}

// ConfirmPricing implements Client.ConfirmPricing.
// Pricing confirmation is not retried: a repeat could return a different price
// than the one the user is about to accept.
func (c *HTTPClient) ConfirmPricing(ctx context.Context, offer RawOffer) (RawOffer, error) {
	var confirmed RawOffer
	if err := c.post(ctx, "pricing/flights/confirm", offer, &confirmed); err != nil {
		return RawOffer{}, err
	}
	return confirmed, nil
}

// CreateOrder implements Client.CreateOrder.
// Booking submission is never retried automatically; retries are user-initiated.
func (c *HTTPClient) CreateOrder(ctx context.Context, req OrderRequest) (OrderResponse, error) {
	var resp OrderResponse
	if err := c.post(ctx, "booking/flight-order", req, &resp); err != nil {
		return OrderResponse{}, err
	}
	return resp, nil
}

// GetOrder implements Client.GetOrder with retry.
func (c *HTTPClient) GetOrder(ctx context.Context, reference string) (OrderResponse, error) {
	return retry.DoWithResult(ctx, func() (OrderResponse, error) {
		var resp OrderResponse
		if err := c.get(ctx, "booking/flight-order/"+url.PathEscape(reference), nil, &resp); err != nil {
			return OrderResponse{}, err
		}
		return resp, nil
	}, c.retryCfg)
}

// get performs a rate-limited GET and decodes the JSON response into out.
func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a rate-limited POST with a JSON body and decodes the response into out.
func (c *HTTPClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.NewUpstreamError(path, 0, fmt.Errorf("encode request: %w", err))
	}
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}

// do executes one HTTP exchange against the upstream API and classifies failures.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body []byte, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return domain.NewUpstreamError(path, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Upstream request failed")
		return domain.NewRetryableUpstreamError(path, 0, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Upstream request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("%s", string(msg))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return domain.NewRetryableUpstreamError(path, resp.StatusCode, err)
		}
		return domain.NewUpstreamError(path, resp.StatusCode, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUpstreamError(path, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Ensure HTTPClient implements Client at compile time.
var _ Client = (*HTTPClient)(nil)
