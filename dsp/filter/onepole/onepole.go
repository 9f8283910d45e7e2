package onepole

import (
	"math"

	"github.com/belalkandil0/FathomOS-sub005/dsp/core"
)

// LowPass applies a single-pole IIR approximation of a Butterworth low-pass
// filter. The smoothing coefficient is derived from physical units:
//
//	rc    = 1 / (2*pi*cutoffHz)
//	dt    = 1 / sampleRate
//	alpha = dt / (rc + dt)
//
// and the recurrence has the same causal form as exponential smoothing.
// Non-positive cutoff or sample rate returns an unchanged copy.
func LowPass(signal []float64, cutoffHz, sampleRate float64) []float64 {
	if cutoffHz <= 0 || sampleRate <= 0 {
		return core.Copy(signal)
	}

	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	rc := 1 / (2 * math.Pi * cutoffHz)
	dt := 1 / sampleRate
	alpha := dt / (rc + dt)

	out[0] = signal[0]
	for i := 1; i < len(signal); i++ {
		out[i] = out[i-1] + alpha*(signal[i]-out[i-1])
	}

	return out
}

// HighPass is the complement of [LowPass]: the input minus its low-passed
// version.
func HighPass(signal []float64, cutoffHz, sampleRate float64) []float64 {
	low := LowPass(signal, cutoffHz, sampleRate)
	for i := range low {
		low[i] = signal[i] - low[i]
	}
	return low
}

// BandPass passes frequencies between lowCutoffHz and highCutoffHz by
// composing [HighPass] and [LowPass]; it has no implementation of its own.
func BandPass(signal []float64, lowCutoffHz, highCutoffHz, sampleRate float64) []float64 {
	return LowPass(HighPass(signal, lowCutoffHz, sampleRate), highCutoffHz, sampleRate)
}
