// Package channel computes summary statistics of a survey channel in one
// call. The fathomsmooth CLI prints these before and after conditioning so
// an operator can see what a pass actually did to a channel.
package channel

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds the summary statistics of one channel.
type Stats struct {
	Length   int
	Mean     float64
	StdDev   float64 // sample standard deviation
	Min      float64
	Max      float64
	Range    float64
	RMS      float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Calculate computes all statistics of the given channel. An empty channel
// returns the zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	mean, variance := stat.MeanVariance(signal, nil)

	var sumSq float64
	for _, v := range signal {
		sumSq += v * v
	}

	s := Stats{
		Length: n,
		Mean:   mean,
		Min:    floats.Min(signal),
		Max:    floats.Max(signal),
		RMS:    math.Sqrt(sumSq / float64(n)),
	}
	s.Range = s.Max - s.Min

	if n > 1 {
		s.StdDev = math.Sqrt(variance)
	}
	if s.StdDev > 0 {
		s.Skewness = stat.Skew(signal, nil)
		s.Kurtosis = stat.ExKurtosis(signal, nil)
	}

	return s
}

// Correction summarizes how far a conditioned channel moved from the raw
// one: the largest absolute per-sample delta and the number of samples that
// moved by more than eps. The slices must have equal length.
func Correction(raw, conditioned []float64, eps float64) (maxDelta float64, moved int) {
	for i := range raw {
		d := math.Abs(conditioned[i] - raw[i])
		if d > maxDelta {
			maxDelta = d
		}
		if d > eps {
			moved++
		}
	}
	return maxDelta, moved
}
