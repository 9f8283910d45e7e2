package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// OddWindow coerces a requested window size to the smallest odd integer
// >= max(3, size). Windowed kernels never reject a window; they widen it.
func OddWindow(size int) int {
	if size < 3 {
		size = 3
	}

	if size%2 == 0 {
		size++
	}

	return size
}

// HasNonFinite reports whether signal contains a NaN or Inf sample.
// Kernels propagate non-finite values unguarded; callers that cannot
// tolerate that should screen inputs with this helper first.
func HasNonFinite(signal []float64) bool {
	for _, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
