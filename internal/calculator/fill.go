package calculator

import "math"

// ForwardFill propagates the most recent known value into subsequent NaN
// entries. Leading NaNs stay NaN. Returns a new slice.
func ForwardFill(values []float64) []float64 {
	out := make([]float64, len(values))
	last := math.NaN()
	for i, v := range values {
		if !math.IsNaN(v) {
			last = v
		}
		out[i] = last
	}
	return out
}

// BackwardFill propagates the next known value backward into preceding NaN
// entries. Trailing NaNs stay NaN. Returns a new slice.
func BackwardFill(values []float64) []float64 {
	out := make([]float64, len(values))
	next := math.NaN()
	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			next = values[i]
		}
		out[i] = next
	}
	return out
}
