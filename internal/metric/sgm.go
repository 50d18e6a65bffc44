/*
PURPOSE:
  Numeric primitives shared by every aggregate: the shifted geometric mean,
  the chart-series validity check, log-axis scaling and display rounding.

REQUIREMENTS:
  User-specified:
  - SGM(x, s) = exp(mean(ln(max(1, x+s)))) - s with a default shift of 10.

  Implementation-discovered:
  - Summing logs avoids overflow on long runtime lists.
  - Empty input is "no data" (NaN), not an error.

ERROR HANDLING:
  - None. NaN propagates and is dropped by IsValid at the series boundary.
*/

// Package metric holds the numeric primitives shared by the aggregation
// pipeline: the shifted geometric mean, the chart log transform and rounding.
package metric

import (
	"math"
	"strconv"
)

// DefaultShift is the shift constant applied when none is configured.
const DefaultShift = 10.0

// SGM returns the shifted geometric mean exp(mean(ln(max(1, x+shift)))) - shift.
//
// The mean is taken in log space so values near the timeout boundary cannot
// overflow a running product. Non-finite inputs are skipped. An empty input, or
// one where every value was skipped, yields NaN, which callers treat as
// "no data" and drop at the series boundary.
func SGM(values []float64, shift float64) float64 {
	var sum float64
	n := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += math.Log(math.Max(1, v+shift))
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return math.Exp(sum/float64(n)) - shift
}

// IsValid reports whether x can be plotted or used as a ratio baseline.
func IsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}

// LogScale maps x onto a log10 axis. Non-positive values have no position.
func LogScale(x float64) float64 {
	if !(x > 0) {
		return math.NaN()
	}
	return math.Log10(x)
}

// Round rounds x half away from zero to the given number of decimal digits.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}

// FormatDecimal renders x with a fixed number of digits; missing values render as "-".
func FormatDecimal(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "-"
	}
	return strconv.FormatFloat(Round(x, digits), 'f', digits, 64)
}
