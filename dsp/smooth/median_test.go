package smooth

import (
	"testing"

	"github.com/belalkandil0/FathomOS-sub005/internal/testutil"
)

func TestMedianClippedBoundaries(t *testing.T) {
	// Boundary windows are [5,1], [5,1,5], [1,5,5], [5,5,9], [5,9]; the
	// even-length edge windows take the lower middle of the sorted slice.
	got := Median([]float64{5, 1, 5, 5, 9}, 3)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 5, 5, 5, 5}, 0)
}

func TestMedianOutputsOriginalValues(t *testing.T) {
	in := testutil.Noise(3, 10, 128)
	got := Median(in, 5)
	testutil.RequireSameLength(t, got, in)

	for i, v := range got {
		found := false
		lo := i - 2
		if lo < 0 {
			lo = 0
		}
		hi := i + 2
		if hi > len(in)-1 {
			hi = len(in) - 1
		}
		for j := lo; j <= hi; j++ {
			if in[j] == v {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("index %d: median %v is not an original value in its window", i, v)
		}
	}
}

func TestMedianSuppressesSingleSpike(t *testing.T) {
	in := testutil.InjectSpike(testutil.Constant(1, 9), 4, 99)
	got := Median(in, 3)
	testutil.RequireSliceNearlyEqual(t, got, testutil.Constant(1, 9), 0)
}

func TestMedianEmpty(t *testing.T) {
	if got := Median(nil, 3); len(got) != 0 {
		t.Fatalf("length = %d, want 0", len(got))
	}
}
