package survey

// Epsilon is the correction magnitude below which a point does not count as
// modified: Euclidean distance for the position channel, absolute
// difference for the scalar channels.
const Epsilon = 1e-4

// Result describes one conditioning pass. It is created fresh per call and
// holds no reference back to the input points.
type Result struct {
	TotalPoints int

	PositionPointsModified int
	DepthPointsModified    int
	AltitudePointsModified int

	MaxPositionCorrection float64
	MaxDepthCorrection    float64
	MaxAltitudeCorrection float64

	// ModifiedPointIndices lists, in ascending order and without
	// duplicates, every point index where any enabled channel moved by
	// more than Epsilon.
	ModifiedPointIndices []int

	// PointsChanged is the size of ModifiedPointIndices. Earlier releases
	// reported this figure as "SpikesRemoved", but it has always counted
	// points changed by any means, ordinary smoothing deltas included.
	// The name is fixed here; the semantics are unchanged.
	PointsChanged int
}
