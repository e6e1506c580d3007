package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{name: "burn calories", query: "I want to burn 300 calories", want: IntentFitnessRoute},
		{name: "upper case", query: "BURN 500 CALORIES please", want: IntentFitnessRoute},
		{name: "route", query: "what's the best route downtown", want: IntentDirections},
		{name: "directions", query: "give me directions to the airport", want: IntentDirections},
		{name: "how to get", query: "how to get to Lincoln Park", want: IntentDirections},
		{name: "burn without calories", query: "burn some time", want: IntentUnknown},
		{name: "unrelated", query: "what's the weather like", want: IntentUnknown},
		{name: "empty", query: "", want: IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.query))
		})
	}
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "fitness_route", IntentFitnessRoute.String())
	assert.Equal(t, "directions", IntentDirections.String())
	assert.Equal(t, "unknown", IntentUnknown.String())
}

func TestExtractCalories(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
		ok    bool
	}{
		{name: "simple", query: "burn 300 calories", want: 300, ok: true},
		{name: "upper case", query: "Burn 1500 calories today", want: 1500, ok: true},
		{name: "extra spaces", query: "burn   42 calories", want: 42, ok: true},
		{name: "no amount", query: "burn calories", ok: false},
		{name: "no burn", query: "300 calories", ok: false},
		{name: "empty", query: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCalories(tt.query)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
