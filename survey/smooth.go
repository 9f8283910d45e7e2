package survey

import (
	"math"
	"sort"

	"github.com/belalkandil0/FathomOS-sub005/dsp/core"
	"github.com/belalkandil0/FathomOS-sub005/dsp/kalman"
	"github.com/belalkandil0/FathomOS-sub005/dsp/smooth"
	"github.com/belalkandil0/FathomOS-sub005/dsp/spike"
	"github.com/belalkandil0/FathomOS-sub005/dsp/spline"
)

// Smooth conditions the enabled channels of points in place (writing only
// the Smoothed companion fields) and returns a fresh Result. Fewer than 3
// points is a no-op beyond setting TotalPoints. Disabled channels have
// their companion fields set to the raw values so consumers can always read
// the Smoothed side.
func Smooth(points []Point, opts Options) Result {
	res := Result{TotalPoints: len(points)}

	for i := range points {
		points[i].SmoothedEasting = points[i].Easting
		points[i].SmoothedNorthing = points[i].Northing
		points[i].SmoothedDepth = points[i].Depth
		points[i].SmoothedAltitude = points[i].Altitude
	}

	if len(points) < 3 {
		return res
	}

	modified := make(map[int]struct{})

	if opts.SmoothPosition {
		easting := make([]float64, len(points))
		northing := make([]float64, len(points))
		for i := range points {
			easting[i] = points[i].Easting
			northing[i] = points[i].Northing
		}

		smoothedE := applyMethod(easting, opts.PositionMethod, opts.PositionWindow, opts.PositionThreshold, opts)
		smoothedN := applyMethod(northing, opts.PositionMethod, opts.PositionWindow, opts.PositionThreshold, opts)

		for i := range points {
			points[i].SmoothedEasting = smoothedE[i]
			points[i].SmoothedNorthing = smoothedN[i]

			correction := math.Hypot(smoothedE[i]-easting[i], smoothedN[i]-northing[i])
			if correction > res.MaxPositionCorrection {
				res.MaxPositionCorrection = correction
			}
			if correction > Epsilon {
				res.PositionPointsModified++
				modified[i] = struct{}{}
			}
		}
	}

	if opts.SmoothDepth {
		raw := make([]float64, len(points))
		for i := range points {
			raw[i] = points[i].Depth
		}

		conditioned := applyMethod(raw, opts.VerticalMethod, opts.VerticalWindow, opts.VerticalThreshold, opts)

		for i := range points {
			points[i].SmoothedDepth = conditioned[i]

			correction := math.Abs(conditioned[i] - raw[i])
			if correction > res.MaxDepthCorrection {
				res.MaxDepthCorrection = correction
			}
			if correction > Epsilon {
				res.DepthPointsModified++
				modified[i] = struct{}{}
			}
		}
	}

	if opts.SmoothAltitude {
		raw := make([]float64, len(points))
		for i := range points {
			raw[i] = points[i].Altitude
		}

		conditioned := applyMethod(raw, opts.VerticalMethod, opts.VerticalWindow, opts.VerticalThreshold, opts)

		for i := range points {
			points[i].SmoothedAltitude = conditioned[i]

			correction := math.Abs(conditioned[i] - raw[i])
			if correction > res.MaxAltitudeCorrection {
				res.MaxAltitudeCorrection = correction
			}
			if correction > Epsilon {
				res.AltitudePointsModified++
				modified[i] = struct{}{}
			}
		}
	}

	res.ModifiedPointIndices = make([]int, 0, len(modified))
	for i := range modified {
		res.ModifiedPointIndices = append(res.ModifiedPointIndices, i)
	}
	sort.Ints(res.ModifiedPointIndices)
	res.PointsChanged = len(res.ModifiedPointIndices)

	return res
}

// applyMethod is the only place Method tags are interpreted.
func applyMethod(signal []float64, method Method, window int, threshold float64, opts Options) []float64 {
	switch method {
	case MovingAverage:
		return smooth.MovingAverage(signal, window)
	case SavitzkyGolay:
		return smooth.SavitzkyGolay(signal, window, 2)
	case SplineFit:
		return spline.Fit(signal, splineTension(window))
	case Gaussian:
		// Kernel radius ceil(3*sigma) matches the configured half-window.
		return smooth.Gaussian(signal, float64(core.OddWindow(window))/6)
	case MedianFilter:
		return smooth.Median(signal, window)
	case ThresholdBased:
		return spike.Remove(signal, spike.Detect(signal, window, threshold))
	case KalmanFilter:
		pn, mn := opts.ProcessNoise, opts.MeasurementNoise
		if pn <= 0 {
			pn = 0.001
		}
		if mn <= 0 {
			mn = 0.1
		}
		return kalman.Smooth(signal, pn, mn)
	default:
		return core.Copy(signal)
	}
}

// splineTension maps a window size onto a spline knot spacing of half the
// window, expressed as the tension parameter spline.Fit expects.
func splineTension(window int) float64 {
	half := core.OddWindow(window) / 2
	if half < 2 {
		half = 2
	}
	return 1 - 1/float64(half)
}
