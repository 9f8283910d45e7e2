package smooth

import (
	"testing"

	"github.com/belalkandil0/FathomOS-sub005/internal/testutil"
)

func TestExponentialRecurrence(t *testing.T) {
	got := Exponential([]float64{10, 0, 0, 0}, 0.5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{10, 5, 2.5, 1.25}, 1e-12)
}

func TestExponentialAlphaClamp(t *testing.T) {
	in := []float64{1, 2, 3, 4}

	// alpha = 1 passes the signal through unchanged.
	identity := Exponential(in, 1)
	testutil.RequireSliceNearlyEqual(t, identity, in, 0)

	// Values above 1 clamp down to 1, values at or below 0 clamp up to 0.01.
	testutil.RequireSliceNearlyEqual(t, Exponential(in, 5), identity, 0)
	testutil.RequireSliceNearlyEqual(t, Exponential(in, 0), Exponential(in, 0.01), 0)
	testutil.RequireSliceNearlyEqual(t, Exponential(in, -3), Exponential(in, 0.01), 0)
}

func TestExponentialIsCausal(t *testing.T) {
	base := testutil.Constant(1, 10)
	bumped := testutil.InjectSpike(base, 6, 5)

	a := Exponential(base, 0.3)
	b := Exponential(bumped, 0.3)

	// Outputs before the disturbance must be identical.
	testutil.RequireSliceNearlyEqual(t, a[:6], b[:6], 0)
	if a[6] == b[6] {
		t.Fatal("disturbance did not reach its own index")
	}
}

func TestExponentialEmpty(t *testing.T) {
	if got := Exponential(nil, 0.5); len(got) != 0 {
		t.Fatalf("length = %d, want 0", len(got))
	}
}
