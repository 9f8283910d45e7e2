package kalman

import "github.com/belalkandil0/FathomOS-sub005/dsp/core"

// Smooth runs a scalar Kalman filter forward over the signal and then a
// Rauch-Tung-Striebel backward pass over the retained forward estimates.
//
// Forward pass, per sample:
//
//	predictedError = previousError + processNoise
//	gain           = predictedError / (predictedError + measurementNoise)
//	estimate       = predicted + gain*(observation - predicted)
//	error          = (1 - gain) * predictedError
//
// The state is initialized to signal[0] with error estimate 1.0.
//
// Backward pass: smoothed[N-1] equals the final forward estimate exactly;
// earlier samples blend the forward estimate with the already-smoothed
// successor using gain forwardError[i] / (forwardError[i] + processNoise).
//
// Unlike the windowed kernels, the result at every index depends on the
// entire signal.
func Smooth(signal []float64, processNoise, measurementNoise float64) []float64 {
	if len(signal) == 0 {
		return core.Copy(signal)
	}

	forward := make([]float64, len(signal))
	forwardError := make([]float64, len(signal))

	estimate := signal[0]
	errEstimate := 1.0
	forward[0] = estimate
	forwardError[0] = errEstimate

	for i := 1; i < len(signal); i++ {
		predictedError := errEstimate + processNoise
		gain := predictedError / (predictedError + measurementNoise)

		estimate += gain * (signal[i] - estimate)
		errEstimate = (1 - gain) * predictedError

		forward[i] = estimate
		forwardError[i] = errEstimate
	}

	smoothed := make([]float64, len(signal))
	smoothed[len(signal)-1] = forward[len(signal)-1]

	for i := len(signal) - 2; i >= 0; i-- {
		gain := forwardError[i] / (forwardError[i] + processNoise)
		smoothed[i] = forward[i] + gain*(smoothed[i+1]-forward[i])
	}

	return smoothed
}
