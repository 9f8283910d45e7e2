package resample

import (
	"testing"

	"github.com/belalkandil0/FathomOS-sub005/internal/testutil"
)

func TestLinearIdentity(t *testing.T) {
	in := []float64{0, 10, 20, 30}
	got := Linear(in, 4)
	testutil.RequireSliceNearlyEqual(t, got, in, 0)

	// Identity is still a fresh copy.
	got[0] = 99
	if in[0] != 0 {
		t.Fatal("identity resample aliased the input")
	}
}

func TestLinearNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		if got := Linear([]float64{1, 2, 3}, n); len(got) != 0 {
			t.Fatalf("Linear(_, %d) length = %d, want 0", n, len(got))
		}
	}
}

func TestLinearEndpointPreservation(t *testing.T) {
	in := testutil.Noise(27, 5, 37)

	for _, k := range []int{2, 5, 36, 37, 38, 100} {
		got := Linear(in, k)
		if len(got) != k {
			t.Fatalf("k=%d: length = %d", k, len(got))
		}
		if got[0] != in[0] {
			t.Fatalf("k=%d: first sample %v, want %v", k, got[0], in[0])
		}
		if got[k-1] != in[len(in)-1] {
			t.Fatalf("k=%d: last sample %v, want %v", k, got[k-1], in[len(in)-1])
		}
	}
}

func TestLinearUpsampleMidpoints(t *testing.T) {
	got := Linear([]float64{0, 10}, 3)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 5, 10}, 1e-12)

	got = Linear([]float64{0, 10, 20}, 5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 5, 10, 15, 20}, 1e-12)
}

func TestLinearDownsampleKeepsTrend(t *testing.T) {
	in := testutil.Ramp(0, 1, 11)
	got := Linear(in, 6)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 2, 4, 6, 8, 10}, 1e-12)
}

func TestLinearDegenerateInputs(t *testing.T) {
	if got := Linear(nil, 3); len(got) != 3 {
		t.Fatalf("length = %d, want 3", len(got))
	}

	got := Linear([]float64{7}, 4)
	testutil.RequireSliceNearlyEqual(t, got, []float64{7, 7, 7, 7}, 0)

	got = Linear([]float64{1, 9}, 1)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1}, 0)
}
