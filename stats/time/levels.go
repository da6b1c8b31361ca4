package time

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/goldilocks/dsp/core"
)

// Levels holds the level summary of a signal.
//
//nolint:revive
type Levels struct {
	Length         int
	Peak           float64 // max |x|
	Peak_dB        float64
	RMS            float64
	RMS_dB         float64
	CrestFactor_dB float64 // Peak_dB - RMS_dB, 0 for silence
}

// ampTodB converts an amplitude to decibels. Zero maps to -Inf.
func ampTodB(value float64) float64 {
	return core.LinearToDB(math.Abs(value))
}

func newLevels(n int, peak, sumSq float64) Levels {
	if n == 0 {
		return Levels{Peak_dB: math.Inf(-1), RMS_dB: math.Inf(-1)}
	}

	rms := math.Sqrt(sumSq / float64(n))

	l := Levels{
		Length:  n,
		Peak:    peak,
		Peak_dB: ampTodB(peak),
		RMS:     rms,
		RMS_dB:  ampTodB(rms),
	}

	if rms > 0 {
		l.CrestFactor_dB = l.Peak_dB - l.RMS_dB
	}

	return l
}

// Measure computes the levels of signal in one pass.
func Measure(signal []float64) Levels {
	if len(signal) == 0 {
		return newLevels(0, 0, 0)
	}

	return newLevels(len(signal), vecmath.MaxAbs(signal), vecmath.DotProduct(signal, signal))
}

// Reduction returns how many dB quieter after is than before, by RMS.
// It is +Inf when after is silent and before is not, and 0 when both are silent.
func Reduction(before, after Levels) float64 {
	switch {
	case before.RMS == 0 && after.RMS == 0:
		return 0
	case after.RMS == 0:
		return math.Inf(1)
	default:
		return before.RMS_dB - after.RMS_dB
	}
}

// Meter accumulates levels across blocks. The result equals [Measure] on the
// concatenated blocks up to summation order.
type Meter struct {
	n     int
	peak  float64
	sumSq float64
}

// Update folds one block into the meter.
func (m *Meter) Update(block []float64) {
	if len(block) == 0 {
		return
	}

	m.n += len(block)
	m.peak = math.Max(m.peak, vecmath.MaxAbs(block))
	m.sumSq += vecmath.DotProduct(block, block)
}

// Levels returns the levels of everything seen so far.
func (m *Meter) Levels() Levels {
	return newLevels(m.n, m.peak, m.sumSq)
}

// Reset clears the meter.
func (m *Meter) Reset() {
	*m = Meter{}
}
