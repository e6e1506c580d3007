package fitness

import (
	"fmt"
	"strings"
)

// Calorie target bounds.
const (
	MinCalories = 10
	MaxCalories = 10000

	// MaxWalkingCalories is the threshold above which a walking target
	// triggers the gym suggestion (about a 19 km walk).
	MaxWalkingCalories = 1000
)

// validModes is the closed set of accepted transportation modes.
var validModes = []string{ModeWalking, ModeBicycling, ModeDriving, ModeTransit}

// ValidationError is a terminal, user-facing input rejection.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateMode normalizes a transportation mode. Matching is
// case-insensitive; anything outside the four-mode set is rejected, never
// coerced.
func ValidateMode(mode string) (string, error) {
	lower := strings.ToLower(mode)
	for _, valid := range validModes {
		if lower == valid {
			return lower, nil
		}
	}
	return "", validationErrorf("Invalid mode '%s'. Must be one of: %s", mode, strings.Join(validModes, ", "))
}

// ValidateCalories checks a calorie target against the closed interval
// [MinCalories, MaxCalories].
func ValidateCalories(calories int) (int, error) {
	if calories < MinCalories {
		return 0, validationErrorf("Calories must be at least %d", MinCalories)
	}
	if calories > MaxCalories {
		return 0, validationErrorf("Calories must be at most %d", MaxCalories)
	}
	return calories, nil
}

// NormalizeLocation trims a location string and rejects empty or too-short
// input. No semantic validation happens here; whether the location exists is
// the geocoder's call, and that check is best-effort.
func NormalizeLocation(location string) (string, error) {
	normalized := strings.TrimSpace(location)
	if normalized == "" {
		return "", &ValidationError{Message: "Location cannot be empty"}
	}
	if len(normalized) < 2 {
		return "", &ValidationError{Message: "Location must be at least 2 characters"}
	}
	return normalized, nil
}
