package spline

import (
	"gonum.org/v1/gonum/interp"

	"github.com/belalkandil0/FathomOS-sub005/dsp/core"
)

// Fit smooths a signal by fitting a natural cubic spline through a reduced
// set of knots and re-evaluating it at every integer index. The sample index
// is the independent variable.
//
// tension in (0, 1) controls the knot spacing and therefore how much detail
// survives: near 0 keeps knots dense (output close to the input), values
// toward 1 spread the knots and suppress progressively longer wavelengths.
// A tension <= 0 and signals shorter than 4 samples return an unchanged
// copy; tension is capped at 0.95.
//
// Because the spline is re-evaluated at the knots themselves, the first and
// last samples are always preserved exactly.
func Fit(signal []float64, tension float64) []float64 {
	if len(signal) < 4 || tension <= 0 {
		return core.Copy(signal)
	}

	tension = core.Clamp(tension, 0, 0.95)

	// Knot spacing grows as tension approaches 1: 0.5 -> 2, 0.8 -> 5.
	spacing := int(1 / (1 - tension))
	if spacing < 2 {
		spacing = 2
	}
	if spacing > len(signal)-1 {
		spacing = len(signal) - 1
	}

	xs := make([]float64, 0, len(signal)/spacing+2)
	ys := make([]float64, 0, cap(xs))
	for i := 0; i < len(signal); i += spacing {
		xs = append(xs, float64(i))
		ys = append(ys, signal[i])
	}
	if last := len(signal) - 1; xs[len(xs)-1] != float64(last) {
		xs = append(xs, float64(last))
		ys = append(ys, signal[last])
	}

	var fit interp.NaturalCubic
	if err := fit.Fit(xs, ys); err != nil {
		return core.Copy(signal)
	}

	out := make([]float64, len(signal))
	for i := range out {
		out[i] = fit.Predict(float64(i))
	}

	return out
}
