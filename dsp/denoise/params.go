package denoise

import (
	"fmt"
	"math"

	"github.com/cwbudde/goldilocks/dsp/core"
)

// Control ranges as exposed to hosts.
const (
	LearnWindowMin  = 0.1  // seconds
	LearnWindowMax  = 30.0 // seconds
	NoiseFloorMinDB = -96.0
	NoiseFloorMaxDB = 60.0

	// DefaultLearnWindow is the middle of the learn window range.
	DefaultLearnWindow = (LearnWindowMin + LearnWindowMax) / 2
	// DefaultNoiseFloorDB is the low default of the noise floor range:
	// 0.75*lower + 0.25*upper.
	DefaultNoiseFloorDB = 0.75*NoiseFloorMinDB + 0.25*NoiseFloorMaxDB

	legacyFloorFactor = 20
)

// FloorScale selects how the noise floor control in dB maps to a linear
// bin magnitude.
type FloorScale int

const (
	// FloorScaleAmplitude uses the standard amplitude conversion 10^(dB/20).
	FloorScaleAmplitude FloorScale = iota
	// FloorScaleLegacy reproduces the 20 * 10^(dB/20) scale of the LADSPA release,
	// which puts every threshold about 26 dB higher.
	FloorScaleLegacy
)

// String implements fmt.Stringer.
func (s FloorScale) String() string {
	switch s {
	case FloorScaleAmplitude:
		return "amplitude"
	case FloorScaleLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("FloorScale(%d)", int(s))
	}
}

// Amplitude converts a floor in dB to a linear magnitude.
func (s FloorScale) Amplitude(db float64) float64 {
	amp := dbToAmplitude(db)
	if s == FloorScaleLegacy {
		return legacyFloorFactor * amp
	}

	return amp
}

// Params is the gate configuration for one block. It is derived once per
// block and not modified while the block is processed.
type Params struct {
	// Learn enables the noise profile accumulator.
	Learn bool
	// LearnTime is the learn window in samples. Must be positive when Learn is set.
	LearnTime float64
	// NoiseFloor is the linear, 1/N-normalized bin magnitude below which a
	// bin is zeroed. Zero opens the gate completely.
	NoiseFloor float64
}

// Controls are the raw host control values.
type Controls struct {
	Learn        bool
	LearnWindow  float64 // seconds
	NoiseFloorDB float64
}

// DefaultControls returns the host defaults: learn off, mid learn window,
// low noise floor.
func DefaultControls() Controls {
	return Controls{
		LearnWindow:  DefaultLearnWindow,
		NoiseFloorDB: DefaultNoiseFloorDB,
	}
}

// Clamp limits every control to its documented range. Non-finite values
// fall back to the default; out-of-range values are never rejected.
func (c Controls) Clamp() Controls {
	if math.IsNaN(c.LearnWindow) {
		c.LearnWindow = DefaultLearnWindow
	}

	if math.IsNaN(c.NoiseFloorDB) {
		c.NoiseFloorDB = DefaultNoiseFloorDB
	}

	c.LearnWindow = core.Clamp(c.LearnWindow, LearnWindowMin, LearnWindowMax)
	c.NoiseFloorDB = core.Clamp(c.NoiseFloorDB, NoiseFloorMinDB, NoiseFloorMaxDB)

	return c
}

// Params derives the gate parameters for sampleRate after clamping.
func (c Controls) Params(sampleRate float64, scale FloorScale) Params {
	c = c.Clamp()

	return Params{
		Learn:      c.Learn,
		LearnTime:  c.LearnWindow * sampleRate,
		NoiseFloor: scale.Amplitude(c.NoiseFloorDB),
	}
}
