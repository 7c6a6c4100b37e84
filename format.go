package rpncalc

import (
	"math"
	"strconv"
	"strings"
)

// DefaultDecimals is the number of fractional digits results are rounded to
// unless a Calculator is created with the Decimals option.
const DefaultDecimals = 6

// Formatter renders results for display.
type Formatter struct {
	// Decimals is the number of digits after the decimal point to round to
	// before trailing zeros are trimmed. Negative values mean the shortest
	// representation that parses back to the same float64.
	Decimals int
}

// Format renders x in fixed-point notation with insignificant trailing zeros
// removed, along with the decimal point if nothing follows it. Infinities
// render as "Infinity" and "-Infinity", NaN as "NaN". Results that round to
// zero never carry a minus sign.
func (f Formatter) Format(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.IsNaN(x):
		return "NaN"
	}
	s := strconv.FormatFloat(x, 'f', f.Decimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Format renders x with the default formatter, which rounds to six decimal
// places, so Format(3.14) is "3.14" and Format(3) is "3".
func Format(x float64) string {
	return Formatter{Decimals: DefaultDecimals}.Format(x)
}
