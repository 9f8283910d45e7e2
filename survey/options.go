package survey

import "fmt"

// Method selects which kernel a channel is conditioned with. The tag is
// interpreted in exactly one place, the dispatch switch inside [Smooth];
// the kernels themselves know nothing about it.
type Method int

const (
	MovingAverage Method = iota
	SavitzkyGolay
	SplineFit
	Gaussian
	MedianFilter
	ThresholdBased
	KalmanFilter
)

var methodNames = map[Method]string{
	MovingAverage:  "moving-average",
	SavitzkyGolay:  "savitzky-golay",
	SplineFit:      "spline-fit",
	Gaussian:       "gaussian",
	MedianFilter:   "median",
	ThresholdBased: "threshold",
	KalmanFilter:   "kalman",
}

// String returns the canonical name of the method.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a canonical method name back into its tag.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown smoothing method %q", name)
}

// Options configures one call to [Smooth]. It is read-only input: Smooth
// never mutates it. The position channel and the vertical channels (depth
// and altitude) are configured independently.
type Options struct {
	SmoothPosition bool `yaml:"smooth_position"`
	SmoothDepth    bool `yaml:"smooth_depth"`
	SmoothAltitude bool `yaml:"smooth_altitude"`

	PositionMethod    Method  `yaml:"-"`
	PositionWindow    int     `yaml:"position_window"`
	PositionThreshold float64 `yaml:"position_threshold"`

	VerticalMethod    Method  `yaml:"-"`
	VerticalWindow    int     `yaml:"vertical_window"`
	VerticalThreshold float64 `yaml:"vertical_threshold"`

	// Used only when a channel selects KalmanFilter.
	ProcessNoise     float64 `yaml:"process_noise"`
	MeasurementNoise float64 `yaml:"measurement_noise"`
}

// DefaultOptions returns the configuration the survey modules start from:
// every channel enabled, moving average over a 5-sample window, and Kalman
// noise figures suited to slowly drifting navigation channels.
func DefaultOptions() Options {
	return Options{
		SmoothPosition:    true,
		SmoothDepth:       true,
		SmoothAltitude:    true,
		PositionMethod:    MovingAverage,
		PositionWindow:    5,
		PositionThreshold: 3.0,
		VerticalMethod:    MovingAverage,
		VerticalWindow:    5,
		VerticalThreshold: 3.0,
		ProcessNoise:      0.001,
		MeasurementNoise:  0.1,
	}
}
