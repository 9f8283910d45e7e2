// Package survey applies the signal-conditioning kernels to lists of survey
// points and reports how much each channel moved.
//
// A [Point] contributes one sample to each of up to three independent
// channels: the 2-D position channel (easting and northing jointly), depth,
// and altitude. [Smooth] extracts the raw arrays per enabled channel,
// dispatches to the kernel selected in [Options], writes results into the
// point's companion Smoothed fields, and returns a [Result] with per-channel
// counters, maximum corrections, and the set of touched point indices.
//
// Original channel values are never overwritten; after any call the raw
// fields are bit-identical to what the caller passed in. This is the only
// package with any notion of survey-point semantics: everything under dsp/
// works on anonymous float64 slices.
package survey
