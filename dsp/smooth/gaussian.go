package smooth

import (
	"math"

	"github.com/belalkandil0/FathomOS-sub005/dsp/core"
)

// Gaussian convolves the signal with a Gaussian kernel of the given standard
// deviation. The kernel radius is ceil(3*sigma) and the kernel is normalized
// to sum 1; at the boundaries each output is renormalized by the kernel mass
// actually inside bounds, so edge values never inflate beyond the input
// range. A sigma <= 0 returns an unchanged copy.
func Gaussian(signal []float64, sigma float64) []float64 {
	if sigma <= 0 {
		return core.Copy(signal)
	}

	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)

	var kernelSum float64
	for k := -radius; k <= radius; k++ {
		w := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = w
		kernelSum += w
	}
	for k := range kernel {
		kernel[k] /= kernelSum
	}

	for i := range signal {
		var sum, weightSum float64
		for k := -radius; k <= radius; k++ {
			j := i + k
			if j < 0 || j >= len(signal) {
				continue
			}

			w := kernel[k+radius]
			sum += w * signal[j]
			weightSum += w
		}
		out[i] = sum / weightSum
	}

	return out
}
