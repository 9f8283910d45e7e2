package spectrum

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := split(in)
	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := split(in)
	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}

func split(in []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(in))
	re, im = buf[:len(in)], buf[len(in):]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// PowerSpectrum computes the one-sided power spectrum of a real channel:
// bins 0 through N/2 of an FFT over the signal zero-padded to the next
// power of two. An empty signal returns nil.
func PowerSpectrum(signal []float64) []float64 {
	if len(signal) == 0 {
		return nil
	}

	fftSize := nextPow2(len(signal))

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil
	}

	return Power(out[:fftSize/2+1])
}

// DominantFrequency estimates the strongest oscillation in a channel, in the
// same unit as sampleRate (typically Hz for time-indexed channels). The DC
// bin is excluded. Signals shorter than 4 samples, or with a non-positive
// sample rate, return 0.
//
// Survey pipelines use the estimate to place the low-pass cutoff above
// platform motion but below wave-induced noise.
func DominantFrequency(signal []float64, sampleRate float64) float64 {
	if len(signal) < 4 || sampleRate <= 0 {
		return 0
	}

	power := PowerSpectrum(signal)
	if len(power) < 2 {
		return 0
	}

	peak := 1
	for k := 2; k < len(power); k++ {
		if power[k] > power[peak] {
			peak = k
		}
	}

	fftSize := 2 * (len(power) - 1)
	return float64(peak) * sampleRate / float64(fftSize)
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
