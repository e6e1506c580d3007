package fitness

import (
	"context"
	"log/slog"

	"github.com/fitroutes/mapsmcp/pkg/gmaps"
)

// MapsService is the slice of the maps client the planner depends on.
type MapsService interface {
	ValidateLocation(ctx context.Context, location string) (bool, string)
	FindNearbyPlace(ctx context.Context, origin, placeType string, radiusM int) *gmaps.Place
	FindNearbyWaypoint(ctx context.Context, origin string, targetHalfKm float64) string
	Directions(ctx context.Context, req gmaps.DirectionsRequest) (*gmaps.RouteResult, error)
}

const (
	// gymSearchRadiusM is how far to look for a gym when a walking target
	// is too ambitious.
	gymSearchRadiusM = 10000

	// defaultLoopTargetKm sizes the waypoint search for plain directions
	// loops, where no calorie target implies a distance.
	defaultLoopTargetKm = 2.0
)

// Planner orchestrates validation, conversion, waypoint selection and the
// directions lookup for one request. It holds no per-request state.
type Planner struct {
	maps   MapsService
	logger *slog.Logger
}

// NewPlanner creates a Planner backed by the given maps service.
func NewPlanner(maps MapsService, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{maps: maps, logger: logger}
}

// PlanRequest is one fitness-route request. Destination is optional; empty
// means a loop back to the origin.
type PlanRequest struct {
	Origin         string
	Destination    string
	TargetCalories int
	Mode           string
}

// Plan is a terminal planning outcome. Exactly one of Gym and Route is set:
// a found gym short-circuits route building entirely.
type Plan struct {
	TargetCalories int
	Mode           string
	BurnRate       float64
	NeededKm       float64

	// Gym, when set, is the suggested alternative to a very long walk.
	Gym *gmaps.Place

	// GymWarning is set when the target warranted a gym but none was
	// found; the route is still built.
	GymWarning bool

	Route *gmaps.RouteResult
}

// ShortfallKm returns how many kilometers the returned route falls short of
// the needed distance, or 0 when it meets or exceeds it.
func (p *Plan) ShortfallKm() float64 {
	if p.Route == nil {
		return 0
	}
	actual := float64(p.Route.DistanceMeters) / 1000
	if actual >= p.NeededKm {
		return 0
	}
	return p.NeededKm - actual
}

// Plan runs the fitness planning state machine. All failures are terminal;
// nothing is retried and the route is never re-requested with adjusted
// parameters.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*Plan, error) {
	mode, err := ValidateMode(req.Mode)
	if err != nil {
		return nil, err
	}
	calories, err := ValidateCalories(req.TargetCalories)
	if err != nil {
		return nil, err
	}
	origin, err := NormalizeLocation(req.Origin)
	if err != nil {
		return nil, err
	}
	destination := ""
	if req.Destination != "" {
		if destination, err = NormalizeLocation(req.Destination); err != nil {
			return nil, err
		}
	}

	if err := p.checkLocations(ctx, origin, destination); err != nil {
		return nil, err
	}

	rate := BurnRate(mode)
	if rate == 0 {
		return nil, validationErrorf("Mode '%s' does not burn calories. Use 'walking' or 'bicycling' for fitness routes.", mode)
	}

	plan := &Plan{
		TargetCalories: calories,
		Mode:           mode,
		BurnRate:       rate,
		NeededKm:       CaloriesToDistanceKm(calories, mode),
	}

	// A very long walk warrants suggesting a gym instead. Finding one ends
	// planning here; not finding one only adds a warning, the user is
	// never blocked from a valid-but-long route.
	if calories > MaxWalkingCalories && mode == ModeWalking {
		if gym := p.maps.FindNearbyPlace(ctx, origin, "gym", gymSearchRadiusM); gym != nil {
			plan.Gym = gym
			return plan, nil
		}
		p.logger.Debug("no gym found for long walking target", "calories", calories)
		plan.GymWarning = true
	}

	var waypoints []string
	if destination == "" {
		if wp := p.maps.FindNearbyWaypoint(ctx, origin, plan.NeededKm/2); wp != "" {
			waypoints = []string{wp}
		}
	}

	route, err := p.maps.Directions(ctx, gmaps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
		Waypoints:   waypoints,
	})
	if err != nil {
		return nil, err
	}
	plan.Route = route
	return plan, nil
}

// RouteRequest is one plain directions request. Destination is optional;
// empty means a loop back to the origin.
type RouteRequest struct {
	Origin      string
	Destination string
	Mode        string
}

// Route requests directions without any calorie planning. Loops get a
// waypoint sized for a short default distance so the provider does not
// return a degenerate zero-length path.
func (p *Planner) Route(ctx context.Context, req RouteRequest) (*gmaps.RouteResult, error) {
	mode, err := ValidateMode(req.Mode)
	if err != nil {
		return nil, err
	}
	origin, err := NormalizeLocation(req.Origin)
	if err != nil {
		return nil, err
	}
	destination := ""
	if req.Destination != "" {
		if destination, err = NormalizeLocation(req.Destination); err != nil {
			return nil, err
		}
	}

	if err := p.checkLocations(ctx, origin, destination); err != nil {
		return nil, err
	}

	var waypoints []string
	if destination == "" {
		if wp := p.maps.FindNearbyWaypoint(ctx, origin, defaultLoopTargetKm); wp != "" {
			waypoints = []string{wp}
		}
	}

	return p.maps.Directions(ctx, gmaps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
		Waypoints:   waypoints,
	})
}

// NearestRequest is one place lookup request.
type NearestRequest struct {
	Origin    string
	PlaceType string
	RadiusKm  float64
}

// NearestResult carries the lookup parameters alongside the result so the
// formatter can phrase both the hit and the miss. Place is nil when nothing
// was found; that is not an error.
type NearestResult struct {
	Origin    string
	PlaceType string
	RadiusKm  float64
	Place     *gmaps.Place
}

// Nearest finds the closest place of a type near an origin.
func (p *Planner) Nearest(ctx context.Context, req NearestRequest) (*NearestResult, error) {
	origin, err := NormalizeLocation(req.Origin)
	if err != nil {
		return nil, err
	}
	if err := p.checkLocations(ctx, origin, ""); err != nil {
		return nil, err
	}

	radiusM := int(req.RadiusKm * 1000)
	return &NearestResult{
		Origin:    origin,
		PlaceType: req.PlaceType,
		RadiusKm:  req.RadiusKm,
		Place:     p.maps.FindNearbyPlace(ctx, origin, req.PlaceType, radiusM),
	}, nil
}

// checkLocations runs the best-effort geocoder validation over the origin
// and optional destination. Only an explicit negative answer fails; an
// unavailable geocoder assumes the locations are valid.
func (p *Planner) checkLocations(ctx context.Context, origin, destination string) error {
	if ok, detail := p.maps.ValidateLocation(ctx, origin); !ok {
		return &ValidationError{Message: detail}
	}
	if destination != "" {
		if ok, detail := p.maps.ValidateLocation(ctx, destination); !ok {
			return &ValidationError{Message: detail}
		}
	}
	return nil
}
