package spike

import (
	"math"

	"github.com/belalkandil0/FathomOS-sub005/dsp/core"
)

// DefaultThreshold is the z-score multiple used when callers pass a
// non-positive threshold.
const DefaultThreshold = 3.0

// Detect flags samples that deviate from their local neighborhood by more
// than threshold standard deviations. For each index the mean and standard
// deviation are computed over the other samples in the bounds-clipped window
// (the sample itself is excluded). Returned indices are ascending.
//
// Signals shorter than 3 samples produce no spikes. A window whose
// neighborhood has zero variance flags the sample only if the sample itself
// deviates from the (constant) neighborhood; a fully constant window never
// flags. Neighborhoods of fewer than two samples cannot support an estimate
// and never flag.
func Detect(signal []float64, windowSize int, threshold float64) []int {
	if len(signal) < 3 {
		return nil
	}

	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	half := core.OddWindow(windowSize) / 2

	var spikes []int
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
		count := 0
		for j := start; j <= end; j++ {
			if j == i {
				continue
			}
			sum += signal[j]
			count++
		}
		if count < 2 {
			continue
		}

		mean := sum / float64(count)

		var variance float64
		for j := start; j <= end; j++ {
			if j == i {
				continue
			}
			d := signal[j] - mean
			variance += d * d
		}
		stddev := math.Sqrt(variance / float64(count))

		deviation := math.Abs(signal[i] - mean)
		if stddev > 0 {
			if deviation > threshold*stddev {
				spikes = append(spikes, i)
			}
		} else if deviation > 0 {
			// Constant neighborhood: any deviation at all is a spike.
			spikes = append(spikes, i)
		}
	}

	return spikes
}

// Remove replaces each flagged sample with a value interpolated from its
// nearest unflagged neighbors: linear interpolation weighted by relative
// distance when both sides exist, a straight copy when only one side does.
// An empty index set returns an unchanged copy. The index set is only
// meaningful against the exact signal it was detected on.
func Remove(signal []float64, spikes []int) []float64 {
	out := core.Copy(signal)
	if len(spikes) == 0 {
		return out
	}

	flagged := make(map[int]bool, len(spikes))
	for _, idx := range spikes {
		flagged[idx] = true
	}

	for _, idx := range spikes {
		if idx < 0 || idx >= len(signal) {
			continue
		}

		left := idx - 1
		for left >= 0 && flagged[left] {
			left--
		}
		right := idx + 1
		for right < len(signal) && flagged[right] {
			right++
		}

		switch {
		case left >= 0 && right < len(signal):
			frac := float64(idx-left) / float64(right-left)
			out[idx] = signal[left] + frac*(signal[right]-signal[left])
		case left >= 0:
			out[idx] = signal[left]
		case right < len(signal):
			out[idx] = signal[right]
		}
	}

	return out
}
