package plugin

import (
	"fmt"

	"github.com/cwbudde/goldilocks/dsp/denoise"
)

// Port indices. The order is part of the host contract.
const (
	PortLeftIn = iota
	PortRightIn
	PortLeftOut
	PortRightOut
	PortLearn
	PortLearnWindow
	PortNoiseFloor

	NumPorts
)

// UniqueID is the registered plugin identifier.
const UniqueID = 400

// PortKind describes what a port carries and in which direction.
type PortKind int

const (
	AudioInput PortKind = iota
	AudioOutput
	ControlInput
)

// String implements fmt.Stringer.
func (k PortKind) String() string {
	switch k {
	case AudioInput:
		return "audio-in"
	case AudioOutput:
		return "audio-out"
	case ControlInput:
		return "control-in"
	default:
		return fmt.Sprintf("PortKind(%d)", int(k))
	}
}

// IsAudio reports whether the port carries a sample stream.
func (k PortKind) IsAudio() bool { return k == AudioInput || k == AudioOutput }

// Hint flags refine how a host presents a control port.
type Hint uint8

const (
	HintToggled Hint = 1 << iota
	HintLogarithmic
)

// Port is one entry of the port table. Bounds and Default are meaningful for
// control ports only.
type Port struct {
	Name    string
	Kind    PortKind
	Hints   Hint
	Lower   float32
	Upper   float32
	Default float32
}

// Descriptor is the static plugin metadata presented to hosts.
type Descriptor struct {
	UniqueID  int
	Label     string
	Name      string
	Maker     string
	Copyright string
	Ports     []Port
}

// Port returns the port at index.
func (d Descriptor) Port(index int) (Port, error) {
	if index < 0 || index >= len(d.Ports) {
		return Port{}, fmt.Errorf("%w: %d", ErrPortIndex, index)
	}

	return d.Ports[index], nil
}

// NewDescriptor returns the descriptor of the stereo noise gate.
func NewDescriptor() Descriptor {
	return Descriptor{
		UniqueID:  UniqueID,
		Label:     "goldilocks",
		Name:      "Goldilocks FIR denoiser",
		Maker:     "Daniel Hill",
		Copyright: "MIT",
		Ports: []Port{
			PortLeftIn:   {Name: "Left Audio In", Kind: AudioInput},
			PortRightIn:  {Name: "Right Audio In", Kind: AudioInput},
			PortLeftOut:  {Name: "Left Audio Out", Kind: AudioOutput},
			PortRightOut: {Name: "Right Audio Out", Kind: AudioOutput},
			PortLearn: {
				Name:    "Learn",
				Kind:    ControlInput,
				Hints:   HintToggled,
				Lower:   0,
				Upper:   1,
				Default: 0,
			},
			PortLearnWindow: {
				Name:    "Learn Window (seconds)",
				Kind:    ControlInput,
				Lower:   denoise.LearnWindowMin,
				Upper:   denoise.LearnWindowMax,
				Default: denoise.DefaultLearnWindow,
			},
			PortNoiseFloor: {
				Name:    "Noise Floor",
				Kind:    ControlInput,
				Hints:   HintLogarithmic,
				Lower:   denoise.NoiseFloorMinDB,
				Upper:   denoise.NoiseFloorMaxDB,
				Default: denoise.DefaultNoiseFloorDB,
			},
		},
	}
}
