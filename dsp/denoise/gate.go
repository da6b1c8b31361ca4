package denoise

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/goldilocks/dsp/stft"
)

// Gate zeroes half-spectrum bins whose magnitude is below the noise floor.
//
// Bins at or above the floor pass through untouched, phase included.
// Gate holds split real/imag scratch for vectorized magnitude computation and
// is not thread-safe.
type Gate struct {
	re, im, mag []float64

	binFloor BinFloor
}

// NewGate creates a gate for half-spectra of bins bins.
func NewGate(bins int) (*Gate, error) {
	if bins < 2 {
		return nil, fmt.Errorf("denoise: gate needs at least 2 bins: %d", bins)
	}

	return &Gate{
		re:  make([]float64, bins),
		im:  make([]float64, bins),
		mag: make([]float64, bins),
	}, nil
}

// Bins returns the half-spectrum length the gate accepts.
func (g *Gate) Bins() int { return len(g.mag) }

// SetBinFloor installs a per-bin threshold source. nil restores the scalar floor.
func (g *Gate) SetBinFloor(f BinFloor) { g.binFloor = f }

// Magnitudes returns the bin magnitudes computed by the last Apply.
func (g *Gate) Magnitudes() []float64 { return g.mag }

// Apply gates spectrum in place and returns the number of zeroed bins.
//
// When p.Learn is set the channel profile is updated with this frame's
// magnitudes before thresholding. profile may be nil when learning is off
// and no BinFloor is installed.
func (g *Gate) Apply(spectrum []complex128, p Params, profile *NoiseProfile) (int, error) {
	if len(spectrum) != len(g.mag) {
		return 0, fmt.Errorf("%w: gate got %d bins, want %d", stft.ErrLengthMismatch, len(spectrum), len(g.mag))
	}

	for i, v := range spectrum {
		g.re[i] = real(v)
		g.im[i] = imag(v)
	}

	vecmath.Magnitude(g.mag, g.re, g.im)

	if p.Learn && profile != nil {
		profile.Learn(g.mag, p.LearnTime)
	}

	gated := 0

	for i, m := range g.mag {
		floor := p.NoiseFloor
		if g.binFloor != nil {
			floor = g.binFloor.BinFloor(i, floor, profile)
		}

		if m < floor {
			spectrum[i] = 0
			gated++
		}
	}

	return gated, nil
}
