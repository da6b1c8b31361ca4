package denoise

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/goldilocks/dsp/core"
)

// State is the lifecycle state of an Engine.
type State int

const (
	// StateConstructed means buffers and plans exist and history is zero.
	StateConstructed State = iota
	// StateActive means Initialize was called and no block ran yet.
	StateActive
	// StateProcessing means at least one block ran since Initialize.
	StateProcessing
	// StateInactive means Shutdown was called. History is retained until the
	// next Initialize.
	StateInactive
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateActive:
		return "active"
	case StateProcessing:
		return "processing"
	case StateInactive:
		return "inactive"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Processor is the host-independent processing contract.
type Processor interface {
	Initialize() error
	ProcessBlock(out, in [][]float64, controls Controls) error
	Shutdown() error
}

var _ Processor = (*Engine)(nil)

// Engine is the spectral noise gate with lifecycle handling.
//
// Controls are read once per block, clamped and converted into [Params].
// The caller must drive a single Engine from one goroutine.
type Engine struct {
	sampleRate float64
	floorScale FloorScale

	proc  *StreamProcessor
	state State
	log   *logrus.Entry
}

// New creates an Engine. All buffers and FFT plans are allocated here.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	geo := core.ApplyProcessorOptions(cfg.geometry...)
	if !core.IsFinite(geo.SampleRate) || geo.SampleRate <= 0 {
		return nil, fmt.Errorf("denoise: sample rate must be > 0: %f", geo.SampleRate)
	}

	switch cfg.floorScale {
	case FloorScaleAmplitude, FloorScaleLegacy:
	default:
		return nil, fmt.Errorf("denoise: invalid floor scale: %d", cfg.floorScale)
	}

	proc, err := NewStreamProcessor(geo.Channels, geo.FrameSize)
	if err != nil {
		return nil, err
	}

	proc.Gate().SetBinFloor(cfg.binFloor)

	e := &Engine{
		sampleRate: geo.SampleRate,
		floorScale: cfg.floorScale,
		proc:       proc,
		state:      StateConstructed,
		log:        cfg.logger,
	}

	e.log.WithFields(logrus.Fields{
		"function":    "New",
		"sample_rate": geo.SampleRate,
		"channels":    geo.Channels,
		"frame_size":  geo.FrameSize,
		"floor_scale": cfg.floorScale.String(),
	}).Info("Goldilocks denoiser initialized")

	return e, nil
}

// SampleRate returns the sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// FrameSize returns the analysis frame length.
func (e *Engine) FrameSize() int { return e.proc.FrameSize() }

// Channels returns the channel count.
func (e *Engine) Channels() int { return e.proc.Channels() }

// FloorScale returns the configured noise floor convention.
func (e *Engine) FloorScale() FloorScale { return e.floorScale }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Stats returns gate counters.
func (e *Engine) Stats() Stats { return e.proc.Stats() }

// Profile returns the noise profile of channel ch.
func (e *Engine) Profile(ch int) *NoiseProfile { return e.proc.Channel(ch).Profile() }

// Params converts host controls into the gate parameters this engine would use.
func (e *Engine) Params(controls Controls) Params {
	return controls.Params(e.sampleRate, e.floorScale)
}

// Initialize makes the engine ready to process. Re-initializing after
// Shutdown starts again from zero history.
func (e *Engine) Initialize() error {
	if e.state == StateInactive {
		e.proc.Reset()
	}

	prev := e.state
	e.state = StateActive

	e.log.WithFields(logrus.Fields{
		"function": "Initialize",
		"from":     prev.String(),
	}).Debug("Engine activated")

	return nil
}

// ProcessBlock gates one block of per-channel samples. See
// [StreamProcessor.ProcessBlock] for the buffer contract.
func (e *Engine) ProcessBlock(out, in [][]float64, controls Controls) error {
	if e.state != StateActive && e.state != StateProcessing {
		return fmt.Errorf("%w: state %s", ErrNotActive, e.state)
	}

	e.state = StateProcessing

	return e.proc.ProcessBlock(out, in, e.Params(controls))
}

// Shutdown stops processing. History is retained until the next Initialize.
func (e *Engine) Shutdown() error {
	stats := e.proc.Stats()
	e.state = StateInactive

	e.log.WithFields(logrus.Fields{
		"function":    "Shutdown",
		"steps":       stats.Steps,
		"gated_ratio": stats.GatedRatio(),
	}).Debug("Engine deactivated")

	return nil
}

// Reset clears history, profiles and counters without changing state.
func (e *Engine) Reset() {
	e.proc.Reset()
}
