package denoise

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/goldilocks/dsp/core"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	geometry []core.ProcessorOption

	floorScale FloorScale
	binFloor   BinFloor
	logger     *logrus.Entry
}

func defaultConfig() config {
	return config{
		floorScale: FloorScaleAmplitude,
		logger:     logrus.WithField("component", "denoise"),
	}
}

// WithSampleRate sets the sample rate used to convert the learn window to samples.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) { c.geometry = append(c.geometry, core.WithSampleRate(sampleRate)) }
}

// WithChannels sets the number of independent channels (default 2).
func WithChannels(channels int) Option {
	return func(c *config) { c.geometry = append(c.geometry, core.WithChannels(channels)) }
}

// WithFrameSize sets the analysis frame length (default 1024, power of two).
func WithFrameSize(size int) Option {
	return func(c *config) { c.geometry = append(c.geometry, core.WithFrameSize(size)) }
}

// WithFloorScale selects the dB to linear convention for the noise floor.
func WithFloorScale(scale FloorScale) Option {
	return func(c *config) { c.floorScale = scale }
}

// WithBinFloor installs a per-bin threshold source on the gate.
func WithBinFloor(f BinFloor) Option {
	return func(c *config) { c.binFloor = f }
}

// WithLogger sets the lifecycle logger. nil keeps the default.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *config) {
		if entry != nil {
			c.logger = entry
		}
	}
}
