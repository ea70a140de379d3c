package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxSafeInt is the largest float64 magnitude rendered in integer form,
// 2^53. Above it the shortest-round-trip form takes over.
const maxSafeInt = 1 << 53

// formatFloat renders f as an ECMAScript Number::toString literal, the form
// canonical JSON requires. Integer-valued floats up to 2^53 in magnitude
// print as plain integers; magnitudes in [1e-6, 1e21) use positional
// notation; everything else uses exponent notation with an unpadded
// exponent. Negative zero prints as "0".
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: cannot encode non-finite number %v", ErrFormat, f)
	}
	if f == 0 {
		// true for -0.0 as well
		return "0", nil
	}
	abs := math.Abs(f)
	if f == math.Trunc(f) && abs <= maxSafeInt {
		return strconv.FormatInt(int64(f), 10), nil
	}
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64)), nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// trimExponent strips leading zeros from an exponent: strconv emits at
// least two exponent digits ("1e-07") where canonical form wants "1e-7".
// The exponent sign is kept as strconv wrote it.
func trimExponent(v string) string {
	e := strings.IndexByte(v, 'e')
	if e < 0 {
		return v
	}
	mant, exp := v[:e+1], v[e+1:]
	sign := ""
	if exp != "" && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = exp[:1], exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + sign + exp
}
