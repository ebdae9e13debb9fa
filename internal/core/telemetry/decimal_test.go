package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdata.app/pkg/errors"
)

func TestNormalizeDecimal(t *testing.T) {
	tests := []struct {
		token    string
		expected float32
	}{
		{",27", 0.27},
		{"-,27", -0.27},
		{"12,45", 12.45},
		{"-3,00", -3.00},
		{"0,5", 0.5},
		{"+,5", 0.5},
		{"27", 27},
		{"-4", -4},
		{"1.5", 1.5},
		{" 12,45\t", 12.45},
		{"1,5e2", 150},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			value, err := NormalizeDecimal(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestNormalizeDecimal_Invalid(t *testing.T) {
	for _, token := range []string{"", "   ", "abc", "1,2,3", "12,4a", "1e", "NaN", "Inf", "--1", "1e400", "0x1p3"} {
		t.Run(token, func(t *testing.T) {
			_, err := NormalizeDecimal(token)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err))
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		value    float32
		expected string
	}{
		{0.27, ",27"},
		{-0.27, "-,27"},
		{12.45, "12,45"},
		{-3, "-3,0"},
		{0, ",0"},
		{100, "100,0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDecimal(tt.value))
		})
	}
}

func TestFormatDecimal_RoundTrip(t *testing.T) {
	for _, value := range []float32{0.27, -0.27, 0.05, -0.05, 12.45, -3, 0, 99.9, -0.001, 1013.25} {
		parsed, err := NormalizeDecimal(FormatDecimal(value))
		require.NoError(t, err)
		assert.Equal(t, value, parsed)
	}
}
