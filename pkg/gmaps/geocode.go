package gmaps

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fitroutes/mapsmcp/pkg/observability"
)

// Geocoding API statuses the client distinguishes. Anything else is treated
// as a generic error.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusInvalidRequest = "INVALID_REQUEST"
)

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// String renders the pair in the "lat,lng" form the web APIs accept.
func (p LatLng) String() string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// geocode performs a raw Geocoding API lookup with the given timeout.
func (c *Client) geocode(ctx context.Context, address string, timeout time.Duration) (*geocodeResponse, error) {
	params := url.Values{}
	params.Set("address", address)

	var out geocodeResponse
	if err := c.getJSON(ctx, ServiceGeocode, "/geocode/json", params, timeout, &out); err != nil {
		return nil, err
	}
	observability.RecordProviderRequest(ServiceGeocode, out.Status)
	return &out, nil
}

// Geocode resolves an address to coordinates. Successful lookups are cached
// so repeated planning against the same origin stays cheap.
func (c *Client) Geocode(ctx context.Context, address string) (LatLng, error) {
	if c.apiKey == "" {
		return LatLng{}, ErrMissingAPIKey
	}

	if loc, ok := c.geocodeCache.Get(address); ok {
		return loc, nil
	}

	resp, err := c.geocode(ctx, address, c.requestTimeout)
	if err != nil {
		return LatLng{}, err
	}
	if resp.Status != statusOK || len(resp.Results) == 0 {
		return LatLng{}, &ProviderError{
			Service: ServiceGeocode,
			Status:  resp.Status,
		}
	}

	loc := LatLng{
		Lat: resp.Results[0].Geometry.Location.Lat,
		Lng: resp.Results[0].Geometry.Location.Lng,
	}
	c.geocodeCache.Set(address, loc)
	return loc, nil
}

// ValidateLocation checks that the geocoder recognizes a location. The check
// is best-effort: a missing credential, transport failure or timeout reports
// the location as valid rather than blocking the request. Only an explicit
// negative answer from the geocoder fails validation.
func (c *Client) ValidateLocation(ctx context.Context, location string) (bool, string) {
	if c.apiKey == "" {
		return true, ""
	}

	resp, err := c.geocode(ctx, location, c.validateTimeout)
	if err != nil {
		c.logger.Debug("location validation unavailable", "error", err)
		return true, ""
	}

	switch {
	case resp.Status == statusOK && len(resp.Results) > 0:
		return true, ""
	case resp.Status == statusZeroResults:
		return false, fmt.Sprintf("Location '%s' not found. Please check spelling or use a more specific address.", location)
	case resp.Status == statusInvalidRequest:
		return false, fmt.Sprintf("Invalid location format: '%s'", location)
	default:
		return false, fmt.Sprintf("Geocoding error: %s", resp.Status)
	}
}
