package smooth

import (
	"testing"

	"github.com/belalkandil0/FathomOS-sub005/internal/testutil"
)

func TestMovingAverageClippedWindows(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1.5, 2, 3, 4, 4.5}, 1e-12)
}

func TestMovingAverageWindowCoercion(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}

	// Window sizes below 3 and even sizes are widened, never rejected.
	a := MovingAverage(in, 1)
	b := MovingAverage(in, 2)
	c := MovingAverage(in, 3)
	testutil.RequireSliceNearlyEqual(t, a, c, 0)
	testutil.RequireSliceNearlyEqual(t, b, c, 0)
}

func TestMovingAverageDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
	}{
		{name: "empty", in: nil},
		{name: "single", in: []float64{7}},
		{name: "pair", in: []float64{7, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingAverage(tt.in, 5)
			testutil.RequireSameLength(t, got, tt.in)
		})
	}
}

func TestMovingAverageDoesNotMutateInput(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}
	_ = MovingAverage(in, 5)
	testutil.RequireSliceNearlyEqual(t, in, []float64{1, 2, 3, 4, 5}, 0)
}

func TestWeightedMovingAverageTriangularWeights(t *testing.T) {
	// Window 3 weights are 1,2,1; at the left edge only 2,1 are present.
	got := WeightedMovingAverage([]float64{1, 2, 3}, 3)
	want := []float64{(2*1 + 1*2) / 3.0, (1*1 + 2*2 + 1*3) / 4.0, (1*2 + 2*3) / 3.0}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestConstantIdempotence(t *testing.T) {
	in := testutil.Constant(4.2, 50)

	tests := []struct {
		name string
		fn   func([]float64) []float64
	}{
		{name: "moving_average", fn: func(s []float64) []float64 { return MovingAverage(s, 7) }},
		{name: "weighted_moving_average", fn: func(s []float64) []float64 { return WeightedMovingAverage(s, 7) }},
		{name: "median", fn: func(s []float64) []float64 { return Median(s, 7) }},
		{name: "gaussian", fn: func(s []float64) []float64 { return Gaussian(s, 1.5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(in)
			testutil.RequireSliceNearlyEqual(t, got, in, 1e-9)
		})
	}
}

func TestSmoothingReducesNoise(t *testing.T) {
	clean := testutil.Sine(0.5, 100, 1, 200)
	noisy := make([]float64, len(clean))
	noise := testutil.Noise(7, 0.2, len(clean))
	for i := range clean {
		noisy[i] = clean[i] + noise[i]
	}

	smoothed := MovingAverage(noisy, 9)

	before := testutil.MaxAbsDiff(t, noisy, clean)
	after := testutil.MaxAbsDiff(t, smoothed, clean)
	if after >= before {
		t.Fatalf("moving average did not reduce deviation: before %v, after %v", before, after)
	}
}
