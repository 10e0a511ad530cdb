package calc

import (
	"errors"
	"math"
	"strconv"
)

// FormatNumber renders v the way the display shows computed results.
//
// Magnitudes in [1e-7, 1e21) are written in plain decimal notation using the
// shortest representation that round-trips; anything outside that range uses
// exponent notation. Negative zero is written as "0". Non-finite values keep
// strconv's spelling: "+Inf", "-Inf", "NaN".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseNumber reads display text back into a float64.
//
// Text that is not a number yields NaN. Out-of-range literals saturate to
// ±Inf.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v
	}
	if errors.Is(err, strconv.ErrRange) {
		return v
	}
	return math.NaN()
}

// sameNumber compares floats bitwise so NaN equals NaN.
func sameNumber(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
