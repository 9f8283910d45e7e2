package survey

// Point is one survey fix: raw channel values as captured, plus companion
// fields that receive the conditioned values. The raw fields are never
// written by this package.
type Point struct {
	Easting  float64
	Northing float64
	Depth    float64
	Altitude float64

	SmoothedEasting  float64
	SmoothedNorthing float64
	SmoothedDepth    float64
	SmoothedAltitude float64
}
