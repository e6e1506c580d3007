package fitness

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent classifies a free-text query into one of a fixed set of request
// kinds. This is keyword matching, not NLP.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentFitnessRoute
	IntentDirections
)

// String returns the intent's wire name.
func (i Intent) String() string {
	switch i {
	case IntentFitnessRoute:
		return "fitness_route"
	case IntentDirections:
		return "directions"
	default:
		return "unknown"
	}
}

// caloriePattern matches "burn 300" style phrases.
var caloriePattern = regexp.MustCompile(`burn\s+(\d+)`)

// DetectIntent classifies a query by keyword containment on the lower-cased
// text.
func DetectIntent(query string) Intent {
	q := strings.ToLower(query)
	if strings.Contains(q, "burn") && strings.Contains(q, "calorie") {
		return IntentFitnessRoute
	}
	if strings.Contains(q, "route") || strings.Contains(q, "directions") || strings.Contains(q, "how to get") {
		return IntentDirections
	}
	return IntentUnknown
}

// ExtractCalories pulls a calorie amount out of a query, looking for
// "burn N". The second return is false when no amount is present.
func ExtractCalories(query string) (int, bool) {
	m := caloriePattern.FindStringSubmatch(strings.ToLower(query))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
