package core

// Copy returns a newly allocated copy of signal. Kernels use it for
// short-circuit paths so that every output is a fresh allocation and the
// caller may freely reuse the input afterwards.
func Copy(signal []float64) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)
	return out
}
