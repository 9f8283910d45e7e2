package spectrum

import (
	"math"
	"testing"

	"github.com/belalkandil0/FathomOS-sub005/internal/testutil"
)

func TestMagnitudeAndPower(t *testing.T) {
	in := []complex128{3 + 4i, 0, -2 + 0i}

	mag := Magnitude(in)
	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, 0, 2}, 1e-12)

	pow := Power(in)
	testutil.RequireSliceNearlyEqual(t, pow, []float64{25, 0, 4}, 1e-12)

	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatal("empty input must return nil")
	}
}

func TestPowerSpectrumSize(t *testing.T) {
	// 100 samples pad to 128; one-sided spectrum has 128/2+1 bins.
	got := PowerSpectrum(testutil.Noise(3, 1, 100))
	if len(got) != 65 {
		t.Fatalf("bins = %d, want 65", len(got))
	}

	if PowerSpectrum(nil) != nil {
		t.Fatal("empty signal must return nil")
	}
}

func TestDominantFrequencyOfSine(t *testing.T) {
	const sampleRate = 128.0

	tests := []struct {
		name string
		freq float64
	}{
		{name: "4hz", freq: 4},
		{name: "16hz", freq: 16},
		{name: "30hz", freq: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testutil.Sine(tt.freq, sampleRate, 1, 512)
			got := DominantFrequency(in, sampleRate)

			// Bin resolution is sampleRate/512 = 0.25.
			if math.Abs(got-tt.freq) > 0.26 {
				t.Fatalf("dominant frequency = %v, want %v", got, tt.freq)
			}
		})
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if got := DominantFrequency([]float64{1, 2, 3}, 100); got != 0 {
		t.Fatalf("short signal: got %v, want 0", got)
	}
	if got := DominantFrequency(testutil.Sine(5, 100, 1, 64), 0); got != 0 {
		t.Fatalf("zero sample rate: got %v, want 0", got)
	}
}

func TestDominantFrequencyIgnoresDC(t *testing.T) {
	// A strong offset must not swamp a weak tone.
	in := testutil.Sine(8, 128, 0.1, 512)
	for i := range in {
		in[i] += 50
	}

	got := DominantFrequency(in, 128)
	if math.Abs(got-8) > 0.26 {
		t.Fatalf("dominant frequency = %v, want 8", got)
	}
}
