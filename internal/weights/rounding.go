package weights

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// every float64 at or above 2^52 is a whole number
const integralFloatThreshold = 1 << 52

// leading float literal, the same prefix a lenient number parser accepts
var floatPrefixRegex = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// RoundToHalf rounds x to the nearest multiple of 0.5 and clamps it at 0.
// Ties go away from zero (math.Round). NaN and +Inf give 0.
func RoundToHalf(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	// already integral, and doubling could overflow to +Inf
	if math.Abs(x) >= integralFloatThreshold {
		return math.Max(0, x)
	}
	return math.Max(0, math.Round(x*2)/2)
}

// ParseWeight parses the leading number in s, ignoring trailing garbage
// ("62.5kg" -> 62.5). ok is false when s does not start with a number.
func ParseWeight(s string) (value float64, ok bool) {
	s = strings.TrimSpace(s)
	m := floatPrefixRegex.FindString(s)
	if m == "" {
		return 0, false
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// out of range literals come back as +-Inf
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// RoundText is RoundToHalf for raw input; unparsable text gives 0.
func RoundText(s string) float64 {
	v, ok := ParseWeight(s)
	if !ok {
		return 0
	}
	return RoundToHalf(v)
}

// FormatWeight renders the rounded weight as "60" or "62.5".
func FormatWeight(x float64) string {
	v := RoundToHalf(x)
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func FormatText(s string) string {
	return FormatWeight(RoundText(s))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
