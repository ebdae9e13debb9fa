package telemetry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"weatherdata.app/pkg/errors"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]*)?([eE][+-]?[0-9]+)?$`)

// NormalizeDecimal parses a comma-separated decimal token as emitted by the field sensors.
// The integer part may be missing (",27" or "-,27"); it is treated as zero.
func NormalizeDecimal(token string) (float32, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.NewParseError("empty decimal value", nil)
	}

	literal := token
	if intPart, fraction, found := strings.Cut(token, ","); found {
		if intPart == "" || intPart == "-" || intPart == "+" {
			literal = intPart + "0." + fraction
		} else {
			literal = intPart + "." + fraction
		}
	}

	if !decimalLiteral.MatchString(literal) {
		return 0, errors.NewParseError(fmt.Sprintf("invalid decimal value %q", token), nil)
	}

	value, err := strconv.ParseFloat(literal, 32)
	if err != nil {
		return 0, errors.NewParseError(fmt.Sprintf("invalid decimal value %q", token), err)
	}
	return float32(value), nil
}

// FormatDecimal renders v the way the sensors do: comma separator, no leading zero below one.
func FormatDecimal(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	switch {
	case strings.HasPrefix(s, "0."):
		s = s[1:]
	case strings.HasPrefix(s, "-0."):
		s = "-" + s[2:]
	}
	return strings.Replace(s, ".", ",", 1)
}
