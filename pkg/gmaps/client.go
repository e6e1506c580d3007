package gmaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/fitroutes/mapsmcp/pkg/config"
	"github.com/fitroutes/mapsmcp/pkg/observability"
)

const (
	// DefaultBaseURL is the root of the Google Maps web API.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api"

	// UserAgent identifies this client on outbound requests.
	UserAgent = "maps-routes-mcp/0.1.0"

	// Service names used for rate limiting and metrics.
	ServiceGeocode    = "geocode"
	ServicePlaces     = "places"
	ServiceDirections = "directions"

	// geocodeCacheTTL bounds how long a resolved address is reused.
	geocodeCacheTTL = 5 * time.Minute

	// maxErrorBody limits how much of an error response body is surfaced.
	maxErrorBody = 100
)

// Client talks to the Google Maps web APIs. All state it owns (limiters,
// geocode cache) is internally synchronized; a single Client is shared by
// concurrent tool calls.
type Client struct {
	apiKey          string
	baseURL         string
	httpClient      *http.Client
	logger          *slog.Logger
	validateTimeout time.Duration
	requestTimeout  time.Duration
	limiters        map[string]*rate.Limiter
	geocodeCache    *TTLCache[string, LatLng]
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client from the resolved configuration.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		apiKey:  cfg.APIKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger:          slog.Default(),
		validateTimeout: cfg.ValidateTimeout,
		requestTimeout:  cfg.RequestTimeout,
		limiters: map[string]*rate.Limiter{
			ServiceGeocode:    rate.NewLimiter(rate.Limit(cfg.GeocodeLimit.RequestsPerSecond), cfg.GeocodeLimit.Burst),
			ServicePlaces:     rate.NewLimiter(rate.Limit(cfg.PlacesLimit.RequestsPerSecond), cfg.PlacesLimit.Burst),
			ServiceDirections: rate.NewLimiter(rate.Limit(cfg.DirectionsLimit.RequestsPerSecond), cfg.DirectionsLimit.Burst),
		},
		geocodeCache: NewTTLCache[string, LatLng](geocodeCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasAPIKey reports whether a credential is configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// getJSON performs a rate-limited GET against one of the API endpoints and
// decodes the JSON response into out. The timeout is applied per call; the
// parent context still cancels early.
func (c *Client) getJSON(ctx context.Context, service, path string, params url.Values, timeout time.Duration, out any) error {
	if err := c.limiters[service].Wait(ctx); err != nil {
		return transportError(service, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return transportError(service, err)
	}
	params.Set("key", c.apiKey)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return transportError(service, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.RecordProviderRequest(service, "transport_error")
		if errors.Is(err, context.DeadlineExceeded) {
			return timeoutError(service)
		}
		return transportError(service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.RecordProviderRequest(service, fmt.Sprintf("http_%d", resp.StatusCode))
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ProviderError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		observability.RecordProviderRequest(service, "decode_error")
		return &ProviderError{
			Service: service,
			Message: fmt.Sprintf("Failed to parse %s response", service),
		}
	}
	return nil
}
