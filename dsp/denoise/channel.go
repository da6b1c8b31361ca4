package denoise

import "github.com/cwbudde/goldilocks/dsp/stft"

// ChannelState is the history and noise profile owned by one channel.
type ChannelState struct {
	history *stft.FrameBuffer
	profile *NoiseProfile
}

func newChannelState(frameSize int) (*ChannelState, error) {
	history, err := stft.NewFrameBuffer(frameSize)
	if err != nil {
		return nil, err
	}

	return &ChannelState{
		history: history,
		profile: NewNoiseProfile(frameSize/2 + 1),
	}, nil
}

// History returns the channel's frame buffer.
func (c *ChannelState) History() *stft.FrameBuffer { return c.history }

// Profile returns the channel's noise profile.
func (c *ChannelState) Profile() *NoiseProfile { return c.profile }

// Reset clears history and profile.
func (c *ChannelState) Reset() {
	c.history.Reset()
	c.profile.Reset()
}
