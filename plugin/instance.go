package plugin

import (
	"fmt"

	"github.com/cwbudde/goldilocks/dsp/core"
	"github.com/cwbudde/goldilocks/dsp/denoise"
)

const (
	numChannels      = 2
	defaultMaxBlock  = 4096
	learnOnThreshold = 0.5
)

var (
	inputPorts  = [numChannels]int{PortLeftIn, PortRightIn}
	outputPorts = [numChannels]int{PortLeftOut, PortRightOut}
	audioPorts  = [...]int{PortLeftIn, PortRightIn, PortLeftOut, PortRightOut}
)

// Instance is one running copy of the plugin.
//
// The host connects a buffer to every port, calls Activate, then Run once
// per block. Control ports are read from element 0 of their buffer at the
// start of each block. An Instance must be driven from a single goroutine.
type Instance struct {
	desc   Descriptor
	engine *denoise.Engine
	ports  [NumPorts][]float32

	in  [][]float64
	out [][]float64
}

// Instantiate creates an instance for sampleRate. opts are passed on to the
// engine after the sample rate and channel count.
func Instantiate(sampleRate float64, opts ...denoise.Option) (*Instance, error) {
	engineOpts := append([]denoise.Option{
		denoise.WithSampleRate(sampleRate),
		denoise.WithChannels(numChannels),
	}, opts...)

	engine, err := denoise.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("plugin: instantiate: %w", err)
	}

	inst := &Instance{
		desc:   NewDescriptor(),
		engine: engine,
		in:     make([][]float64, numChannels),
		out:    make([][]float64, numChannels),
	}
	inst.reserve(defaultMaxBlock)

	return inst, nil
}

// Descriptor returns the plugin metadata.
func (i *Instance) Descriptor() Descriptor { return i.desc }

// Engine returns the underlying engine.
func (i *Instance) Engine() *denoise.Engine { return i.engine }

// ConnectPort attaches a host buffer to port index. Control ports read
// data[0]. Passing nil disconnects the port.
func (i *Instance) ConnectPort(index int, data []float32) error {
	if index < 0 || index >= NumPorts {
		return fmt.Errorf("%w: %d", ErrPortIndex, index)
	}

	i.ports[index] = data

	return nil
}

// Reserve grows the conversion buffers to hold blocks of up to n samples so
// that Run does not allocate for such blocks.
func (i *Instance) Reserve(n int) { i.reserve(n) }

func (i *Instance) reserve(n int) {
	for ch := range numChannels {
		if cap(i.in[ch]) < n {
			i.in[ch] = make([]float64, n)
			i.out[ch] = make([]float64, n)
		}
	}
}

// Activate prepares the instance for Run.
func (i *Instance) Activate() error {
	return i.engine.Initialize()
}

// Deactivate stops processing. Activate may be called again afterwards.
func (i *Instance) Deactivate() error {
	return i.engine.Shutdown()
}

// Controls returns the control values currently present on the control ports,
// with unconnected ports reading as their defaults.
func (i *Instance) Controls() denoise.Controls {
	return denoise.Controls{
		Learn:        i.control(PortLearn) > learnOnThreshold,
		LearnWindow:  float64(i.control(PortLearnWindow)),
		NoiseFloorDB: float64(i.control(PortNoiseFloor)),
	}
}

func (i *Instance) control(index int) float32 {
	if buf := i.ports[index]; len(buf) > 0 {
		return buf[0]
	}

	return i.desc.Ports[index].Default
}

// Process gates sampleCount samples from the input ports into the output
// ports and reports invariant violations as errors.
func (i *Instance) Process(sampleCount int) error {
	if sampleCount < 0 {
		return fmt.Errorf("%w: %d", ErrSampleCount, sampleCount)
	}

	for _, idx := range audioPorts {
		buf := i.ports[idx]
		if buf == nil {
			return fmt.Errorf("%w: %s", ErrPortUnconnected, i.desc.Ports[idx].Name)
		}

		if len(buf) < sampleCount {
			return fmt.Errorf("%w: %s has %d, need %d",
				ErrShortBuffer, i.desc.Ports[idx].Name, len(buf), sampleCount)
		}
	}

	controls := i.Controls()

	for ch := range numChannels {
		i.in[ch] = core.EnsureLen(i.in[ch], sampleCount)
		i.out[ch] = core.EnsureLen(i.out[ch], sampleCount)
		core.Widen(i.in[ch], i.ports[inputPorts[ch]][:sampleCount])
	}

	if err := i.engine.ProcessBlock(i.out, i.in, controls); err != nil {
		return fmt.Errorf("plugin: run: %w", err)
	}

	for ch := range numChannels {
		core.Narrow(i.ports[outputPorts[ch]][:sampleCount], i.out[ch])
	}

	return nil
}

// Run is the host run callback. It has no error channel, so an invariant
// violation panics instead of writing corrupted audio.
func (i *Instance) Run(sampleCount int) {
	if err := i.Process(sampleCount); err != nil {
		panic(err)
	}
}
