package smooth

import (
	"sort"

	"github.com/belalkandil0/FathomOS-sub005/dsp/core"
)

// Median replaces each sample with the median of its bounds-clipped window.
// The output is always an exact original sample value, never an interpolated
// one; an even-length boundary window takes the lower middle of the sorted
// slice.
func Median(signal []float64, windowSize int) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	size := core.OddWindow(windowSize)
	half := size / 2
	window := make([]float64, 0, size)

	for i := range signal {
		start := i - half
		if start < 0 {
			start = 0
		}
		end := i + half
		if end > len(signal)-1 {
			end = len(signal) - 1
		}

		window = append(window[:0], signal[start:end+1]...)
		sort.Float64s(window)
		out[i] = window[(len(window)-1)/2]
	}

	return out
}
