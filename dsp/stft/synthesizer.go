package stft

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Synthesizer turns a half-spectrum produced by [Analyzer] back into a real
// frame. The pair round-trips to unity: the Analyzer's 1/size scale is the
// only normalization on the path.
//
// The real-output inverse of algo-fft already divides by size, so the
// Synthesizer multiplies its output by size to undo that second scale.
// The DC and Nyquist bins must be real, as they are for any spectrum
// produced by Forward and gated by real factors.
//
// Synthesizer is not thread-safe.
type Synthesizer struct {
	size int
	gain float64
	plan *algofft.PlanRealT[float64, complex128]
}

// NewSynthesizer creates a synthesizer for frames of size samples.
func NewSynthesizer(size int) (*Synthesizer, error) {
	if err := validateFrameSize(size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlanReal64(size)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create inverse FFT plan: %w", err)
	}

	return &Synthesizer{
		size: size,
		gain: float64(size),
		plan: plan,
	}, nil
}

// Size returns the frame length in samples.
func (s *Synthesizer) Size() int { return s.size }

// Bins returns the expected half-spectrum length, size/2+1.
func (s *Synthesizer) Bins() int { return s.plan.SpectrumLen() }

// Inverse writes the real frame for the half-spectrum half into dst.
func (s *Synthesizer) Inverse(dst []float64, half []complex128) error {
	if len(half) != s.Bins() {
		return fmt.Errorf("%w: spectrum has %d bins, want %d", ErrLengthMismatch, len(half), s.Bins())
	}

	if len(dst) != s.size {
		return fmt.Errorf("%w: frame has %d samples, want %d", ErrLengthMismatch, len(dst), s.size)
	}

	if err := s.plan.Inverse(dst, half); err != nil {
		return fmt.Errorf("stft: inverse FFT failed: %w", err)
	}

	vecmath.ScaleBlockInPlace(dst, s.gain)

	return nil
}
