package stft

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// Analyzer transforms real frames into half-spectra scaled by 1/size, so bin
// magnitudes are expressed in amplitude-normalized units.
//
// The real-input FFT plan is allocated once. Analyzer is not thread-safe.
type Analyzer struct {
	size int
	plan *algofft.PlanRealT[float64, complex128]
}

// NewAnalyzer creates an analyzer for frames of size samples.
func NewAnalyzer(size int) (*Analyzer, error) {
	if err := validateFrameSize(size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlanReal64(size)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create forward FFT plan: %w", err)
	}

	return &Analyzer{size: size, plan: plan}, nil
}

// Size returns the frame length in samples.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the half-spectrum length, size/2+1.
func (a *Analyzer) Bins() int { return a.plan.SpectrumLen() }

// Forward writes the normalized half-spectrum of frame into dst.
func (a *Analyzer) Forward(dst []complex128, frame []float64) error {
	if len(frame) != a.size {
		return fmt.Errorf("%w: frame has %d samples, want %d", ErrLengthMismatch, len(frame), a.size)
	}

	if len(dst) != a.Bins() {
		return fmt.Errorf("%w: spectrum has %d bins, want %d", ErrLengthMismatch, len(dst), a.Bins())
	}

	if err := a.plan.ForwardNormalized(dst, frame); err != nil {
		return fmt.Errorf("stft: forward FFT failed: %w", err)
	}

	return nil
}
