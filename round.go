package calc

import (
	"math"
	"strconv"
)

// Round rounds x to sig significant decimal digits, the way a calculator
// display does before a result is reused as ans. NaN, infinities, and any x
// with sig < 1 are returned unchanged.
func Round(x float64, sig int) float64 {
	if sig < 1 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', sig, 64), 64)
	if err != nil {
		return x
	}
	return v
}
