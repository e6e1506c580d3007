package gmaps

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fitroutes/mapsmcp/pkg/observability"
)

// Place is a single candidate returned by a nearby search. It only lives
// long enough to build a textual waypoint or suggestion.
type Place struct {
	Name     string
	Address  string
	Location string // "lat,lng"
	PlaceID  string
}

// waypointCategories is the priority ladder searched when synthesizing a
// loop waypoint. The first category with any result wins.
var waypointCategories = []string{"park", "point_of_interest", "establishment"}

// loopRadiusFactor scales the waypoint search radius from the target half
// distance. Empirical constant: the outbound plus return leg of a loop via a
// waypoint at this radius roughly matches the requested distance.
const (
	loopRadiusFactor = 0.6
	minLoopRadiusM   = 500
)

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string `json:"name"`
		Vicinity         string `json:"vicinity"`
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// nearbySearch queries the Places Nearby Search API for one category.
func (c *Client) nearbySearch(ctx context.Context, loc LatLng, radiusM int, placeType string) (*placesResponse, error) {
	params := url.Values{}
	params.Set("location", loc.String())
	params.Set("radius", strconv.Itoa(radiusM))
	params.Set("type", placeType)

	var out placesResponse
	if err := c.getJSON(ctx, ServicePlaces, "/place/nearbysearch/json", params, c.requestTimeout, &out); err != nil {
		return nil, err
	}
	observability.RecordProviderRequest(ServicePlaces, out.Status)
	return &out, nil
}

// FindNearbyPlace finds the first place of the given type within radiusM of
// origin. A nil result means nothing was found; lookup failures are treated
// the same way and never surface as errors.
func (c *Client) FindNearbyPlace(ctx context.Context, origin, placeType string, radiusM int) *Place {
	if c.apiKey == "" {
		return nil
	}

	loc, err := c.Geocode(ctx, origin)
	if err != nil {
		c.logger.Debug("place search skipped, geocode failed", "error", err)
		return nil
	}

	resp, err := c.nearbySearch(ctx, loc, radiusM, placeType)
	if err != nil {
		c.logger.Debug("place search failed", "type", placeType, "error", err)
		return nil
	}
	if resp.Status != statusOK || len(resp.Results) == 0 {
		return nil
	}

	r := resp.Results[0]
	address := r.Vicinity
	if address == "" {
		address = r.FormattedAddress
	}
	return &Place{
		Name:     r.Name,
		Address:  address,
		Location: LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}.String(),
		PlaceID:  r.PlaceID,
	}
}

// FindNearbyWaypoint looks for a place near origin suitable as the turning
// point of a loop of roughly 2 × targetHalfKm. It walks the category ladder
// and returns the label of the first result found, or "" when every category
// comes up empty or the lookup fails. Callers treat "" as "route a bare
// origin-to-origin loop".
func (c *Client) FindNearbyWaypoint(ctx context.Context, origin string, targetHalfKm float64) string {
	if c.apiKey == "" {
		return ""
	}

	loc, err := c.Geocode(ctx, origin)
	if err != nil {
		c.logger.Debug("waypoint search skipped, geocode failed", "error", err)
		return ""
	}

	radiusM := int(targetHalfKm * 1000 * loopRadiusFactor)
	if radiusM < minLoopRadiusM {
		radiusM = minLoopRadiusM
	}

	for _, placeType := range waypointCategories {
		resp, err := c.nearbySearch(ctx, loc, radiusM, placeType)
		if err != nil {
			c.logger.Debug("waypoint search failed", "type", placeType, "error", err)
			return ""
		}
		if resp.Status != statusOK || len(resp.Results) == 0 {
			continue
		}

		r := resp.Results[0]
		if label := firstNonEmpty(r.Vicinity, r.FormattedAddress, r.Name); label != "" {
			return label
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
