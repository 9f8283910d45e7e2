// Package kalman provides a scalar Kalman filter with Rauch-Tung-Striebel
// backward smoothing for survey channels.
//
// The forward pass is causal and the backward pass is anti-causal, so the
// smoothed estimate at any index is informed by the whole signal. This makes
// it the kernel of choice for slowly drifting channels (GNSS position,
// altimeter) where a windowed filter would lag the trend.
//
// The state model is a 1-D random walk: processNoise is the expected
// per-sample variance of the true value, measurementNoise the variance of
// the sensor. Larger measurementNoise yields smoother output.
package kalman
