package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafePathSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"dockan", true},
		{"station-12", true},
		{" dockan ", true},
		{"", false},
		{"   ", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
		{"a..b", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSafePathSegment(tt.input))
		})
	}
}
