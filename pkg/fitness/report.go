package fitness

import (
	"fmt"
	"strings"

	"github.com/fitroutes/mapsmcp/pkg/gmaps"
)

// kmToMiles converts kilometers to statute miles.
const kmToMiles = 0.621371

// NoStepsText is emitted in place of an empty step list.
const NoStepsText = "No detailed route steps available."

// FormatFitnessPlan renders a planning outcome as the deterministic fitness
// report. Missing optional fields degrade individual lines; rendering never
// fails.
func FormatFitnessPlan(p *Plan) string {
	if p.Gym != nil {
		return formatGymSuggestion(p)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Fitness Route Information:\n\n")
	fmt.Fprintf(&b, "Target Calories: %d kcal\n", p.TargetCalories)
	if p.GymWarning {
		fmt.Fprintf(&b, "\nWarning: Burning %d calories through walking alone requires approximately %.1f km (~%.1f miles), which is quite a long walk! No gym was found nearby, so the full walking route follows.\n\n", p.TargetCalories, p.NeededKm, p.NeededKm*kmToMiles)
	}
	fmt.Fprintf(&b, "Needed Distance: %.2f km (at ~%.0f kcal/km for %s)\n", p.NeededKm, p.BurnRate, p.Mode)

	route := p.Route
	if route == nil {
		return b.String()
	}

	actualKm := float64(route.DistanceMeters) / 1000
	burned := DistanceToCalories(float64(route.DistanceMeters), p.Mode)

	b.WriteString("\nRoute Details:\n")
	fmt.Fprintf(&b, "Origin: %s\n", route.Origin)
	if route.IsLoop {
		b.WriteString("Route Type: Loop (returns to start)\n")
	} else {
		fmt.Fprintf(&b, "Destination: %s\n", route.Destination)
	}
	fmt.Fprintf(&b, "Distance: %s (%.2f km)\n", route.DistanceText, actualKm)
	fmt.Fprintf(&b, "Duration: %s\n", route.DurationText)
	fmt.Fprintf(&b, "Mode: %s\n", route.Mode)
	if burned > 0 {
		fmt.Fprintf(&b, "Total Calories Burned: ~%.1f kcal\n", burned)
	}
	b.WriteString("\n")

	// Compare, never adjust: the route is reported as-is with advice,
	// not re-requested at a different radius.
	if shortfall := p.ShortfallKm(); shortfall > 0 {
		fmt.Fprintf(&b, "Note: This route is %.2f km shorter than needed. ", shortfall)
		if route.IsLoop {
			fmt.Fprintf(&b, "You may want to extend the loop or make multiple loops to burn %d calories.", p.TargetCalories)
		} else {
			fmt.Fprintf(&b, "You may need to extend the route or make multiple trips to burn %d calories.", p.TargetCalories)
		}
	} else {
		fmt.Fprintf(&b, "Great! This route should help you burn approximately %d calories.", p.TargetCalories)
	}

	if len(route.Steps) > 0 {
		b.WriteString("\n\n--- Detailed Route Steps ---\n\n")
		b.WriteString(FormatRouteSteps(route.Steps, p.Mode))
	}

	return b.String()
}

// formatGymSuggestion renders the gym-suggestion branch taken instead of a
// very long walking route.
func formatGymSuggestion(p *Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target Calories: %d kcal\n\n", p.TargetCalories)
	fmt.Fprintf(&b, "Note: Burning %d calories through walking alone would require approximately %.1f km (~%.1f miles), which is quite a long walk!\n\n", p.TargetCalories, p.NeededKm, p.NeededKm*kmToMiles)
	b.WriteString("Gym Suggestion:\nInstead, consider working out at a nearby gym:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Gym.Name)
	fmt.Fprintf(&b, "Address: %s\n\n", p.Gym.Address)
	fmt.Fprintf(&b, "You can burn %d calories much more efficiently at a gym through:\n", p.TargetCalories)
	b.WriteString("- Cardio exercises (running, cycling, rowing)\n")
	b.WriteString("- Strength training\n")
	b.WriteString("- High-intensity interval training (HIIT)\n\n")
	b.WriteString("Would you like me to find a route to this gym instead?")
	return b.String()
}

// FormatRoute renders a plain directions result.
func FormatRoute(route *gmaps.RouteResult) string {
	var b strings.Builder
	b.WriteString("Route Information:\n\n")
	fmt.Fprintf(&b, "Origin: %s\n", route.Origin)
	if route.IsLoop {
		b.WriteString("Route Type: Loop (returns to start)\n")
	} else {
		fmt.Fprintf(&b, "Destination: %s\n", route.Destination)
	}
	fmt.Fprintf(&b, "Distance: %s\n", route.DistanceText)
	fmt.Fprintf(&b, "Duration: %s\n", route.DurationText)
	fmt.Fprintf(&b, "Mode: %s", route.Mode)

	if burned := DistanceToCalories(float64(route.DistanceMeters), route.Mode); burned > 0 {
		fmt.Fprintf(&b, "\nTotal Calories Burned: ~%.1f kcal", burned)
	}

	if len(route.Steps) > 0 {
		b.WriteString("\n\n--- Detailed Route Steps ---\n\n")
		b.WriteString(FormatRouteSteps(route.Steps, route.Mode))
	}
	return b.String()
}

// FormatRouteSteps renders per-step lines with per-step calorie attribution.
// The calorie clause is omitted for modes that burn nothing, and the whole
// parenthetical is omitted when the step has no distance label.
func FormatRouteSteps(steps []gmaps.RouteStep, mode string) string {
	if len(steps) == 0 {
		return NoStepsText
	}

	lines := make([]string, 0, len(steps))
	for i, step := range steps {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s", i+1, step.Instruction)
		if step.Distance != "" {
			fmt.Fprintf(&b, " (%s", step.Distance)
			if step.Duration != "" {
				fmt.Fprintf(&b, ", %s", step.Duration)
			}
			if kcal := DistanceToCalories(float64(step.DistanceMeters), mode); kcal > 0 {
				fmt.Fprintf(&b, ", ~%.1f kcal", kcal)
			}
			b.WriteString(")")
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// FormatNearest renders a nearest-place lookup, including the no-result
// phrasing.
func FormatNearest(res *NearestResult) string {
	if res.Place == nil {
		return fmt.Sprintf("No %s found within %.1f km of %s. Try increasing the search radius or checking a different location.",
			res.PlaceType, res.RadiusKm, res.Origin)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Nearest %s:\n\n", titleWords(res.PlaceType))
	fmt.Fprintf(&b, "Name: %s\n", res.Place.Name)
	fmt.Fprintf(&b, "Address: %s\n\n", res.Place.Address)
	b.WriteString("Would you like directions to this location?")
	return b.String()
}

// titleWords upper-cases the first letter of each space or underscore
// separated word ("gas_station" -> "Gas_Station").
func titleWords(s string) string {
	out := []rune(s)
	upperNext := true
	for i, r := range out {
		if upperNext && r >= 'a' && r <= 'z' {
			out[i] = r - ('a' - 'A')
		}
		upperNext = r == ' ' || r == '_' || r == '-'
	}
	return string(out)
}
