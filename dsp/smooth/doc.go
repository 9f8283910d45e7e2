// Package smooth provides local and shape-preserving smoothing kernels for
// survey channels: moving average, triangular weighted moving average,
// exponential smoothing, median filter, Gaussian convolution, and a
// Savitzky-Golay polynomial filter.
//
// All kernels share the same conventions:
//
//   - The input slice is never mutated; the output is always a fresh
//     allocation of the same length.
//   - Window sizes are coerced to odd and >= 3 (see [core.OddWindow]).
//   - Windows are clipped at the signal boundaries. There is no padding or
//     reflection; boundary windows are simply shorter, and convolution
//     kernels are renormalized by the weight mass actually inside bounds.
//
// Every kernel here is strictly local: the output at index i depends only on
// samples within the window around i (exponential smoothing depends on the
// causal prefix). For a globally-informed smoother see package kalman.
package smooth
