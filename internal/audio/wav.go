// Package audio reads and writes PCM WAV files as planar float64 samples
// normalized to [-1, 1).
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

var (
	// ErrInvalidWAV indicates the input is not a readable WAV file.
	ErrInvalidWAV = errors.New("audio: invalid WAV file")
	// ErrUnsupportedBitDepth indicates a PCM sample width other than 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("audio: unsupported bit depth")
)

// Clip is decoded audio held as one slice per channel.
type Clip struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// NumChannels returns the channel count.
func (c *Clip) NumChannels() int { return len(c.Channels) }

// Frames returns the number of samples per channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}

	return len(c.Channels[0])
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(c.Frames()) / float64(c.SampleRate) * float64(time.Second))
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return math.Ldexp(1, bitDepth-1), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// Decode reads a complete PCM WAV stream.
func Decode(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: read PCM: %w", err)
	}

	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidWAV)
	}

	scale, err := fullScale(buf.SourceBitDepth)
	if err != nil {
		return nil, err
	}

	numCh := buf.Format.NumChannels
	frames := len(buf.Data) / numCh
	inv := 1 / scale

	clip := &Clip{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   buf.SourceBitDepth,
		Channels:   make([][]float64, numCh),
	}

	for ch := range clip.Channels {
		plane := make([]float64, frames)
		for i := range plane {
			plane[i] = float64(buf.Data[i*numCh+ch]) * inv
		}

		clip.Channels[ch] = plane
	}

	return clip, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	clip, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: %s: %w", path, err)
	}

	return clip, nil
}

// Encode writes clip as PCM WAV at its BitDepth. Samples outside [-1, 1)
// are clipped.
func Encode(w io.WriteSeeker, clip *Clip) error {
	scale, err := fullScale(clip.BitDepth)
	if err != nil {
		return err
	}

	numCh := clip.NumChannels()
	if numCh == 0 {
		return fmt.Errorf("audio: encode: no channels")
	}

	frames := clip.Frames()
	hi := scale - 1
	data := make([]int, frames*numCh)

	for ch, plane := range clip.Channels {
		if len(plane) != frames {
			return fmt.Errorf("audio: encode: channel %d has %d frames, want %d", ch, len(plane), frames)
		}

		for i, v := range plane {
			data[i*numCh+ch] = int(math.Max(-scale, math.Min(hi, math.Round(v*scale))))
		}
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: numCh, SampleRate: clip.SampleRate},
		Data:           data,
		SourceBitDepth: clip.BitDepth,
	}

	enc := wav.NewEncoder(w, clip.SampleRate, clip.BitDepth, numCh, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audio: write PCM: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audio: finalize WAV: %w", err)
	}

	return nil
}

// WriteFile encodes clip into a new file at path.
func WriteFile(path string, clip *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: create %s: %w", path, err)
	}

	if err := Encode(f, clip); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
