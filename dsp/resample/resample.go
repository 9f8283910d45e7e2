package resample

import "github.com/belalkandil0/FathomOS-sub005/dsp/core"

// Linear resamples a signal to newLength samples by linear interpolation
// over a rescaled index. The first and last output samples always map
// exactly to the original's first and last samples.
//
// A newLength equal to the input length returns a value-identical copy;
// newLength <= 0 returns an empty slice.
func Linear(signal []float64, newLength int) []float64 {
	if newLength <= 0 {
		return []float64{}
	}

	if newLength == len(signal) {
		return core.Copy(signal)
	}

	out := make([]float64, newLength)
	if len(signal) == 0 {
		return out
	}

	if len(signal) == 1 || newLength == 1 {
		for i := range out {
			out[i] = signal[0]
		}
		return out
	}

	scale := float64(len(signal)-1) / float64(newLength-1)

	// Edge samples map to the originals exactly; rounding in the rescaled
	// index must never disturb them.
	out[0] = signal[0]
	out[newLength-1] = signal[len(signal)-1]

	for i := 1; i < newLength-1; i++ {
		pos := float64(i) * scale
		j := int(pos)
		if j >= len(signal)-1 {
			out[i] = signal[len(signal)-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = signal[j] + frac*(signal[j+1]-signal[j])
	}

	return out
}
