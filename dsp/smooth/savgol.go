package smooth

import "github.com/belalkandil0/FathomOS-sub005/dsp/core"

// savgolTables holds convolution coefficients for the order-2 window sizes
// the survey pipelines actually configure. Values are the classic
// least-squares quadratic coefficients; each row sums to its divisor.
var savgolTables = map[int]struct {
	coeffs  []float64
	divisor float64
}{
	5:  {coeffs: []float64{-3, 12, 17, 12, -3}, divisor: 35},
	7:  {coeffs: []float64{-2, 3, 6, 7, 6, 3, -2}, divisor: 21},
	9:  {coeffs: []float64{-21, 14, 39, 54, 59, 54, 39, 14, -21}, divisor: 231},
	11: {coeffs: []float64{-36, 9, 44, 69, 84, 89, 84, 69, 44, 9, -36}, divisor: 429},
}

// SavitzkyGolay applies a Savitzky-Golay polynomial smoothing filter.
// polyOrder is clamped to [2, windowSize-2].
//
// Exact least-squares coefficients are tabulated for the four configurations
// used by the survey pipelines: windows 5, 7, 9 and 11 at order 2. Any other
// window/order pair falls back to an inverse-distance weighting
// (1/(1+|offset|), normalized). The fallback is an approximation, not a true
// Savitzky-Golay polynomial fit; it is kept for compatibility with results
// produced by earlier releases and must not be mistaken for the exact filter.
//
// Convolution is boundary-clipped, and each output is rescaled by the sum of
// the coefficients actually applied so that truncated boundary kernels keep
// unit gain.
func SavitzkyGolay(signal []float64, windowSize, polyOrder int) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	size := core.OddWindow(windowSize)
	polyOrder = int(core.Clamp(float64(polyOrder), 2, float64(size-2)))

	coeffs := savgolCoefficients(size, polyOrder)
	half := size / 2

	for i := range signal {
		var sum, coeffSum float64
		for offset := -half; offset <= half; offset++ {
			j := i + offset
			if j < 0 || j >= len(signal) {
				continue
			}

			c := coeffs[offset+half]
			sum += c * signal[j]
			coeffSum += c
		}
		out[i] = sum / coeffSum
	}

	return out
}

// savgolCoefficients returns normalized convolution coefficients for the
// given window and order, consulting the table first.
func savgolCoefficients(windowSize, polyOrder int) []float64 {
	if polyOrder == 2 {
		if entry, ok := savgolTables[windowSize]; ok {
			coeffs := make([]float64, len(entry.coeffs))
			for i, c := range entry.coeffs {
				coeffs[i] = c / entry.divisor
			}
			return coeffs
		}
	}

	// Inverse-distance approximation for untabulated configurations.
	half := windowSize / 2
	coeffs := make([]float64, windowSize)

	var sum float64
	for offset := -half; offset <= half; offset++ {
		w := 1 / (1 + float64(abs(offset)))
		coeffs[offset+half] = w
		sum += w
	}
	for i := range coeffs {
		coeffs[i] /= sum
	}

	return coeffs
}
