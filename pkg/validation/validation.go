package validation

import (
	"strings"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsSafePathSegment reports whether s can be used as a single blob/cache path segment.
func IsSafePathSegment(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return false
	}
	return !strings.ContainsAny(trimmed, `/\`) && !strings.Contains(trimmed, "..")
}
