package plugin

import "errors"

var (
	// ErrPortIndex indicates a port index outside the port table.
	ErrPortIndex = errors.New("plugin: port index out of range")
	// ErrPortUnconnected indicates Run was called before every port had a buffer.
	ErrPortUnconnected = errors.New("plugin: port not connected")
	// ErrShortBuffer indicates a connected buffer is shorter than the block.
	ErrShortBuffer = errors.New("plugin: buffer shorter than sample count")
	// ErrSampleCount indicates a negative sample count.
	ErrSampleCount = errors.New("plugin: negative sample count")
)
