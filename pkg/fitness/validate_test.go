package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "walking", input: "walking", want: "walking"},
		{name: "upper case", input: "WALKING", want: "walking"},
		{name: "mixed case", input: "BiCycling", want: "bicycling"},
		{name: "driving", input: "driving", want: "driving"},
		{name: "transit", input: "transit", want: "transit"},
		{name: "unknown", input: "flying", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "close but wrong", input: "walk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Contains(t, err.Error(), "walking, bicycling, driving, transit")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCalories(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{name: "below minimum", input: 9, wantErr: true},
		{name: "minimum", input: 10},
		{name: "typical", input: 300},
		{name: "maximum", input: 10000},
		{name: "above maximum", input: 10001, wantErr: true},
		{name: "zero", input: 0, wantErr: true},
		{name: "negative", input: -50, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCalories(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "Chicago, IL", want: "Chicago, IL"},
		{name: "surrounding whitespace", input: "  Chicago, IL  ", want: "Chicago, IL"},
		{name: "coordinates", input: "41.8781, -87.6298", want: "41.8781, -87.6298"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "single character", input: "X", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLocation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
