package smooth

import "github.com/belalkandil0/FathomOS-sub005/dsp/core"

// Exponential applies first-order exponential smoothing with the recurrence
//
//	y[0] = x[0]
//	y[i] = alpha*x[i] + (1-alpha)*y[i-1]
//
// alpha is clamped to [0.01, 1.0]. The filter is strictly causal: no sample
// sees anything ahead of it.
func Exponential(signal []float64, alpha float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	alpha = core.Clamp(alpha, 0.01, 1.0)

	out[0] = signal[0]
	for i := 1; i < len(signal); i++ {
		out[i] = alpha*signal[i] + (1-alpha)*out[i-1]
	}

	return out
}
