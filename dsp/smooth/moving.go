package smooth

import "github.com/belalkandil0/FathomOS-sub005/dsp/core"

// MovingAverage replaces each sample with the unweighted mean of the samples
// in a window centered on it. The window is clipped at the signal bounds, so
// boundary windows are naturally shorter.
func MovingAverage(signal []float64, windowSize int) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	half := core.OddWindow(windowSize) / 2

	for i := range signal {
		start := i - half
		if start < 0 {
			start = 0
		}
		end := i + half
		if end > len(signal)-1 {
			end = len(signal) - 1
		}

		var sum float64
		for j := start; j <= end; j++ {
			sum += signal[j]
		}
		out[i] = sum / float64(end-start+1)
	}

	return out
}

// WeightedMovingAverage is a moving average with triangular weights that
// decrease linearly from the window center: weight = half - |offset| + 1.
// The result is normalized by the sum of the weights actually present, so
// out-of-bounds offsets contribute nothing rather than pulling toward zero.
func WeightedMovingAverage(signal []float64, windowSize int) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	half := core.OddWindow(windowSize) / 2

	for i := range signal {
		var sum, weightSum float64
		for offset := -half; offset <= half; offset++ {
			j := i + offset
			if j < 0 || j >= len(signal) {
				continue
			}

			w := float64(half - abs(offset) + 1)
			sum += w * signal[j]
			weightSum += w
		}
		out[i] = sum / weightSum
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
