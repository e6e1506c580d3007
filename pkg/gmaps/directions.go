package gmaps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fitroutes/mapsmcp/pkg/observability"
)

// DirectionsRequest describes one directions lookup. An empty Destination
// requests a loop: the provider destination is set to the origin and the
// result is flagged accordingly.
type DirectionsRequest struct {
	Origin      string
	Destination string
	Mode        string
	Waypoints   []string
}

// RouteStep is one maneuver of a route, with markup already stripped from
// the instruction text.
type RouteStep struct {
	Instruction    string
	Distance       string // provider-formatted label, may be empty
	DistanceMeters int
	Duration       string // provider-formatted label, may be empty
	Maneuver       string
}

// RouteResult is the normalized outcome of a directions lookup, aggregated
// across all legs. It lives only for the requesting call.
type RouteResult struct {
	Origin          string
	Destination     string
	DistanceMeters  int
	DistanceText    string
	DurationSeconds int
	DurationText    string
	Mode            string
	IsLoop          bool
	Legs            int
	Steps           []RouteStep
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			StartAddress string         `json:"start_address"`
			EndAddress   string         `json:"end_address"`
			Distance     directionsText `json:"distance"`
			Duration     directionsText `json:"duration"`
			Steps        []struct {
				HTMLInstructions string         `json:"html_instructions"`
				Distance         directionsText `json:"distance"`
				Duration         directionsText `json:"duration"`
				Maneuver         string         `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

type directionsText struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Directions requests a route and normalizes the multi-leg response into a
// single aggregate result. Provider statuses other than OK are surfaced
// verbatim as the error reason.
func (c *Client) Directions(ctx context.Context, req DirectionsRequest) (*RouteResult, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	isLoop := req.Destination == ""
	destination := req.Destination
	if isLoop {
		destination = req.Origin
	}

	params := url.Values{}
	params.Set("origin", req.Origin)
	params.Set("destination", destination)
	params.Set("mode", req.Mode)
	if len(req.Waypoints) > 0 {
		params.Set("waypoints", strings.Join(req.Waypoints, "|"))
	}

	var out directionsResponse
	if err := c.getJSON(ctx, ServiceDirections, "/directions/json", params, c.requestTimeout, &out); err != nil {
		return nil, err
	}
	observability.RecordProviderRequest(ServiceDirections, out.Status)

	if out.Status != statusOK || len(out.Routes) == 0 {
		status := out.Status
		if status == "" {
			status = "UNKNOWN_ERROR"
		}
		return nil, &ProviderError{Service: ServiceDirections, Status: status}
	}

	legs := out.Routes[0].Legs
	if len(legs) == 0 {
		return nil, &ProviderError{Service: ServiceDirections, Status: "UNKNOWN_ERROR"}
	}

	result := &RouteResult{
		Origin:      legs[0].StartAddress,
		Destination: legs[len(legs)-1].EndAddress,
		Mode:        req.Mode,
		IsLoop:      isLoop,
		Legs:        len(legs),
	}

	for _, leg := range legs {
		result.DistanceMeters += leg.Distance.Value
		result.DurationSeconds += leg.Duration.Value
		for _, step := range leg.Steps {
			result.Steps = append(result.Steps, RouteStep{
				Instruction:    StripMarkup(step.HTMLInstructions),
				Distance:       step.Distance.Text,
				DistanceMeters: step.Distance.Value,
				Duration:       step.Duration.Text,
				Maneuver:       step.Maneuver,
			})
		}
	}

	// A single leg carries provider-formatted labels for the whole trip;
	// for multiple legs there is no trip-level summary to reuse.
	if len(legs) == 1 {
		result.DistanceText = legs[0].Distance.Text
		result.DurationText = legs[0].Duration.Text
	} else {
		result.DistanceText = synthDistanceText(result.DistanceMeters)
		result.DurationText = synthDurationText(result.DurationSeconds)
	}

	return result, nil
}

// synthDistanceText formats an aggregate distance: meters below 1 km,
// kilometers to two decimals otherwise.
func synthDistanceText(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.2f km", float64(meters)/1000)
}

// synthDurationText formats an aggregate duration as "Hh Mm" or "Mm".
func synthDurationText(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
