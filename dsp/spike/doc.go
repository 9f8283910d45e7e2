// Package spike detects and repairs outlier samples in survey channels.
//
// [Detect] is a windowed z-score detector: a sample is a spike when it
// deviates from the mean of its neighbors (itself excluded) by more than a
// threshold multiple of their standard deviation. [Remove] repairs flagged
// samples by interpolating across them from the nearest clean neighbors.
//
// The two functions compose into the usual cleaning pass:
//
//	clean := spike.Remove(raw, spike.Detect(raw, 5, 3.0))
//
// Detection before smoothing keeps a multipath fix or a bad altimeter ping
// from being smeared across its neighborhood by a windowed filter.
package spike
