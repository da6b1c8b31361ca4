package denoise

import (
	"fmt"

	"github.com/cwbudde/goldilocks/dsp/stft"
)

// Stats counts gate activity since construction or the last Reset.
type Stats struct {
	Steps     uint64 // analysis steps over all channels
	Bins      uint64 // bins inspected
	GatedBins uint64 // bins zeroed
}

// GatedRatio returns the fraction of inspected bins that were zeroed.
func (s Stats) GatedRatio() float64 {
	if s.Bins == 0 {
		return 0
	}

	return float64(s.GatedBins) / float64(s.Bins)
}

// StreamProcessor runs the analyze, gate, synthesize and extract cycle for
// every analysis step of a block, channel by channel.
//
// A block of n samples is split into ceil(n/FrameSize) steps; each step admits
// min(remaining, FrameSize) samples and emits the same number. Block sizes
// that do not divide (or are not divided by) the frame size are handled the
// same way: the last step of the block is simply shorter.
//
// StreamProcessor is not thread-safe.
type StreamProcessor struct {
	frameSize int

	analyzer    *stft.Analyzer
	synthesizer *stft.Synthesizer
	gate        *Gate
	channels    []*ChannelState

	frame       []float64
	synthesized []float64
	spectrum    []complex128

	stats Stats
}

// NewStreamProcessor allocates history, plans and scratch for channels
// channels of frameSize-sample analysis frames.
func NewStreamProcessor(channels, frameSize int) (*StreamProcessor, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: need at least one channel: %d", ErrChannelMismatch, channels)
	}

	analyzer, err := stft.NewAnalyzer(frameSize)
	if err != nil {
		return nil, err
	}

	synthesizer, err := stft.NewSynthesizer(frameSize)
	if err != nil {
		return nil, err
	}

	gate, err := NewGate(analyzer.Bins())
	if err != nil {
		return nil, err
	}

	states := make([]*ChannelState, channels)
	for i := range states {
		states[i], err = newChannelState(frameSize)
		if err != nil {
			return nil, err
		}
	}

	return &StreamProcessor{
		frameSize:   frameSize,
		analyzer:    analyzer,
		synthesizer: synthesizer,
		gate:        gate,
		channels:    states,
		frame:       make([]float64, frameSize),
		synthesized: make([]float64, frameSize),
		spectrum:    make([]complex128, analyzer.Bins()),
	}, nil
}

// FrameSize returns the analysis frame length.
func (p *StreamProcessor) FrameSize() int { return p.frameSize }

// Channels returns the number of channels.
func (p *StreamProcessor) Channels() int { return len(p.channels) }

// Channel returns the state of channel ch.
func (p *StreamProcessor) Channel(ch int) *ChannelState { return p.channels[ch] }

// Gate returns the spectral gate shared by all channels.
func (p *StreamProcessor) Gate() *Gate { return p.gate }

// Stats returns gate counters.
func (p *StreamProcessor) Stats() Stats { return p.stats }

// Reset restores all-zero history, identity profiles and zero counters.
func (p *StreamProcessor) Reset() {
	for _, ch := range p.channels {
		ch.Reset()
	}

	p.stats = Stats{}
}

// ProcessBlock gates one block. in and out hold one slice per channel, all of
// the same length. out[ch] may alias in[ch].
//
// A returned error is an invariant violation: the block is abandoned and the
// contents of out are unspecified.
func (p *StreamProcessor) ProcessBlock(out, in [][]float64, params Params) error {
	if len(in) != len(p.channels) || len(out) != len(p.channels) {
		return fmt.Errorf("%w: got %d in / %d out, want %d",
			ErrChannelMismatch, len(in), len(out), len(p.channels))
	}

	n := len(in[0])
	for ch := range p.channels {
		if len(in[ch]) != n || len(out[ch]) != n {
			return fmt.Errorf("%w: channel %d has %d in / %d out samples, want %d",
				stft.ErrLengthMismatch, ch, len(in[ch]), len(out[ch]), n)
		}
	}

	for ch, state := range p.channels {
		src, dst := in[ch], out[ch]

		for offset := 0; offset < n; {
			step := min(n-offset, p.frameSize)
			if err := p.processStep(state, dst[offset:offset+step], src[offset:offset+step], params); err != nil {
				return fmt.Errorf("denoise: channel %d offset %d: %w", ch, offset, err)
			}

			offset += step
		}
	}

	return nil
}

func (p *StreamProcessor) processStep(state *ChannelState, dst, src []float64, params Params) error {
	if err := state.history.Push(src); err != nil {
		return err
	}

	if err := state.history.Frame(p.frame); err != nil {
		return err
	}

	if err := p.analyzer.Forward(p.spectrum, p.frame); err != nil {
		return err
	}

	gated, err := p.gate.Apply(p.spectrum, params, state.profile)
	if err != nil {
		return err
	}

	if err := p.synthesizer.Inverse(p.synthesized, p.spectrum); err != nil {
		return err
	}

	if err := stft.ExtractTail(dst, p.synthesized); err != nil {
		return err
	}

	p.stats.Steps++
	p.stats.Bins += uint64(len(p.spectrum))
	p.stats.GatedBins += uint64(gated)

	return nil
}
