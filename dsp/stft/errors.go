package stft

import (
	"errors"
	"fmt"
)

var (
	// ErrFrameSize indicates an unsupported analysis frame length.
	ErrFrameSize = errors.New("stft: invalid frame size")
	// ErrLengthMismatch indicates a buffer whose length does not match the
	// frame or half-spectrum geometry.
	ErrLengthMismatch = errors.New("stft: length mismatch")
	// ErrGeometry indicates a step or block decomposition that violates the
	// frame geometry. It always points at a bug in the caller.
	ErrGeometry = errors.New("stft: geometry violation")
)

const minFrameSize = 16

func validateFrameSize(size int) error {
	if size < minFrameSize || size&(size-1) != 0 {
		return fmt.Errorf("%w: must be power-of-two and >= %d: %d", ErrFrameSize, minFrameSize, size)
	}

	return nil
}
