package stft

import (
	"fmt"

	"github.com/cwbudde/goldilocks/dsp/core"
)

// FrameBuffer is a fixed-length ring of the most recent samples of one channel.
//
// Its logical length never changes: every Push discards exactly as many of the
// oldest samples as it admits. The zero history is all zeros.
type FrameBuffer struct {
	samples []float64
	head    int // index of the oldest sample
}

// NewFrameBuffer returns a zero-filled history of size samples.
func NewFrameBuffer(size int) (*FrameBuffer, error) {
	if err := validateFrameSize(size); err != nil {
		return nil, err
	}

	return &FrameBuffer{samples: make([]float64, size)}, nil
}

// Len returns the history length. It is constant for the lifetime of the buffer.
func (b *FrameBuffer) Len() int { return len(b.samples) }

// Push drops the len(in) oldest samples and appends in at the tail.
// len(in) must be in [1, Len()].
func (b *FrameBuffer) Push(in []float64) error {
	size := len(b.samples)

	step := len(in)
	if step == 0 || step > size {
		return fmt.Errorf("%w: push of %d samples into %d-sample frame", ErrGeometry, step, size)
	}

	n := copy(b.samples[b.head:], in)
	copy(b.samples, in[n:])

	b.head += step
	if b.head >= size {
		b.head -= size
	}

	return nil
}

// Frame copies the history, oldest to newest, into dst. len(dst) must equal Len().
func (b *FrameBuffer) Frame(dst []float64) error {
	if len(dst) != len(b.samples) {
		return fmt.Errorf("%w: frame destination has %d samples, want %d",
			ErrLengthMismatch, len(dst), len(b.samples))
	}

	n := copy(dst, b.samples[b.head:])
	copy(dst[n:], b.samples[:b.head])

	return nil
}

// At returns the i-th sample counted from the oldest.
func (b *FrameBuffer) At(i int) float64 {
	idx := b.head + i
	if idx >= len(b.samples) {
		idx -= len(b.samples)
	}

	return b.samples[idx]
}

// Reset restores the all-zero history.
func (b *FrameBuffer) Reset() {
	core.Zero(b.samples)
	b.head = 0
}
