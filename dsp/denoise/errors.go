package denoise

import "errors"

var (
	// ErrChannelMismatch indicates a block whose channel count differs from
	// the processor's.
	ErrChannelMismatch = errors.New("denoise: channel count mismatch")
	// ErrNotActive indicates ProcessBlock outside an Initialize/Shutdown pair.
	ErrNotActive = errors.New("denoise: engine not active")
)
