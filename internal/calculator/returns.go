package calculator

import "math"

// Normalize rescales a series so it starts at 1.0 by dividing every value by
// the first value. A zero first value yields Inf and a NaN first value yields
// NaN throughout; neither is special-cased.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	base := values[0]
	for i, v := range values {
		out[i] = v / base
	}
	return out
}

// DailyReturns computes the relative change between consecutive values. The
// first entry has no prior value and is NaN; the output length matches the
// input so the date index stays aligned.
func DailyReturns(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(values); i++ {
		out[i] = (values[i] - values[i-1]) / values[i-1]
	}
	return out
}

// CumulativeReturns computes the total relative change from the first value,
// values[t]/values[0] - 1. The first entry is 0 when the first value is a
// real number.
func CumulativeReturns(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	base := values[0]
	for i, v := range values {
		out[i] = v/base - 1
	}
	return out
}
