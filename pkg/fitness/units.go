// Package fitness implements the route-planning core: calorie/distance
// conversion, input validation, intent detection, the planning state machine
// and the text report renderer.
package fitness

import "math"

// Transportation modes accepted by the planner.
const (
	ModeWalking   = "walking"
	ModeBicycling = "bicycling"
	ModeDriving   = "driving"
	ModeTransit   = "transit"
)

// burnRates maps a mode to kilocalories burned per kilometer for an average
// 155 lb person (walking ~85 kcal/mile, bicycling ~37 kcal/mile). Driving
// and transit burn nothing by policy. Immutable, process-wide.
var burnRates = map[string]float64{
	ModeWalking:   53.0,
	ModeBicycling: 23.0,
	ModeDriving:   0.0,
	ModeTransit:   0.0,
}

// BurnRate returns the kcal/km rate for a mode. Unknown modes fall back to
// the walking rate; validation rejects them before any production path gets
// here.
func BurnRate(mode string) float64 {
	if rate, ok := burnRates[mode]; ok {
		return rate
	}
	return burnRates[ModeWalking]
}

// CaloriesToDistanceKm converts a calorie target into the distance in
// kilometers needed to burn it. Modes that burn nothing yield 0.
func CaloriesToDistanceKm(calories int, mode string) float64 {
	rate := BurnRate(mode)
	if rate == 0 {
		return 0
	}
	return float64(calories) / rate
}

// DistanceToCalories converts a distance in meters into calories burned,
// rounded to one decimal place. Modes that burn nothing yield 0.
func DistanceToCalories(distanceM float64, mode string) float64 {
	rate := BurnRate(mode)
	if rate == 0 {
		return 0
	}
	return math.Round(distanceM/1000*rate*10) / 10
}
