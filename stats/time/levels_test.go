package time

import (
	"math"
	"testing"

	"github.com/cwbudde/goldilocks/internal/testutil"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= tol
}

func TestMeasureEmpty(t *testing.T) {
	l := Measure(nil)

	if l.Length != 0 || l.Peak != 0 || l.RMS != 0 {
		t.Fatalf("Measure(nil) = %+v", l)
	}

	if !math.IsInf(l.Peak_dB, -1) || !math.IsInf(l.RMS_dB, -1) {
		t.Fatalf("empty dB levels = %v / %v, want -Inf", l.Peak_dB, l.RMS_dB)
	}
}

func TestMeasureSquare(t *testing.T) {
	sig := []float64{0.5, -0.5, 0.5, -0.5}
	l := Measure(sig)

	if l.Length != 4 || !almostEqual(l.Peak, 0.5, tolerance) || !almostEqual(l.RMS, 0.5, tolerance) {
		t.Fatalf("Measure() = %+v", l)
	}

	if !almostEqual(l.Peak_dB, 20*math.Log10(0.5), tolerance) {
		t.Fatalf("Peak_dB = %v", l.Peak_dB)
	}

	if !almostEqual(l.CrestFactor_dB, 0, tolerance) {
		t.Fatalf("CrestFactor_dB = %v, want 0", l.CrestFactor_dB)
	}
}

func TestMeasureSine(t *testing.T) {
	// 100 full cycles of a 480 Hz tone at 48 kHz.
	sig := testutil.DeterministicSine(480, 48000, 1, 10000)
	l := Measure(sig)

	if !almostEqual(l.RMS, 1/math.Sqrt2, 1e-9) {
		t.Fatalf("RMS = %v, want %v", l.RMS, 1/math.Sqrt2)
	}

	if !almostEqual(l.CrestFactor_dB, 20*math.Log10(math.Sqrt2), 1e-6) {
		t.Fatalf("CrestFactor_dB = %v", l.CrestFactor_dB)
	}
}

func TestMeasureSilence(t *testing.T) {
	l := Measure(make([]float64, 32))

	if l.Length != 32 || l.CrestFactor_dB != 0 || !math.IsInf(l.RMS_dB, -1) {
		t.Fatalf("Measure(silence) = %+v", l)
	}
}

func TestMeterMatchesMeasure(t *testing.T) {
	sig := testutil.DeterministicNoise(3, 0.7, 5000)
	want := Measure(sig)

	var m Meter
	for _, block := range testutil.Blocks(sig, 333) {
		m.Update(block)
	}

	m.Update(nil)
	got := m.Levels()

	if got.Length != want.Length || got.Peak != want.Peak {
		t.Fatalf("Meter length/peak = %d/%v, want %d/%v", got.Length, got.Peak, want.Length, want.Peak)
	}

	if !almostEqual(got.RMS, want.RMS, 1e-12) {
		t.Fatalf("Meter RMS = %v, want %v", got.RMS, want.RMS)
	}

	m.Reset()
	if m.Levels().Length != 0 {
		t.Fatal("Reset did not clear the meter")
	}
}

func TestReduction(t *testing.T) {
	loud := Measure([]float64{1, -1})
	quiet := Measure([]float64{0.1, -0.1})
	silent := Measure([]float64{0, 0})

	if got := Reduction(loud, quiet); !almostEqual(got, 20, 1e-9) {
		t.Fatalf("Reduction(loud, quiet) = %v, want 20", got)
	}

	if got := Reduction(loud, silent); !math.IsInf(got, 1) {
		t.Fatalf("Reduction(loud, silent) = %v, want +Inf", got)
	}

	if got := Reduction(silent, silent); got != 0 {
		t.Fatalf("Reduction(silent, silent) = %v, want 0", got)
	}
}
