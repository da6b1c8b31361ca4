// Package pipeline denoises WAV files offline by streaming them through the
// plugin in host-sized blocks.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/goldilocks/dsp/core"
	"github.com/cwbudde/goldilocks/dsp/denoise"
	"github.com/cwbudde/goldilocks/internal/audio"
	"github.com/cwbudde/goldilocks/plugin"
	timestats "github.com/cwbudde/goldilocks/stats/time"
)

// DefaultBlockSize is the host block size used when Options.BlockSize is unset.
const DefaultBlockSize = 1024

// ErrTooManyChannels indicates an input with more channels than the plugin has.
var ErrTooManyChannels = errors.New("pipeline: only mono and stereo input is supported")

// Options configure a Processor.
type Options struct {
	Controls    denoise.Controls
	BlockSize   int
	LegacyFloor bool
}

// ProgressFunc is called after every block with the frames done so far.
type ProgressFunc func(done, total int)

// Result summarizes one processed clip or file.
type Result struct {
	Input      string
	Output     string
	SampleRate int
	Channels   int
	Frames     int
	Duration   time.Duration
	Before     timestats.Levels
	After      timestats.Levels
	Gate       denoise.Stats
	Elapsed    time.Duration
}

// Reduction returns the RMS level drop in dB.
func (r Result) Reduction() float64 {
	return timestats.Reduction(r.Before, r.After)
}

// Processor runs the denoiser over whole clips.
type Processor struct {
	opts Options
	log  *logrus.Entry
}

// New returns a Processor. A nil log falls back to the standard logger.
func New(opts Options, log *logrus.Entry) *Processor {
	if opts.BlockSize <= 0 {
		opts.BlockSize = DefaultBlockSize
	}

	if log == nil {
		log = logrus.WithField("component", "pipeline")
	}

	return &Processor{opts: opts, log: log}
}

// Options returns the effective options.
func (p *Processor) Options() Options { return p.opts }

type hostPorts struct {
	audio  [4][]float32
	learn  []float32
	window []float32
	floor  []float32
}

func (p *Processor) connect(inst *plugin.Instance) (*hostPorts, error) {
	h := &hostPorts{
		learn:  []float32{0},
		window: []float32{float32(p.opts.Controls.LearnWindow)},
		floor:  []float32{float32(p.opts.Controls.NoiseFloorDB)},
	}

	if p.opts.Controls.Learn {
		h.learn[0] = 1
	}

	for i := range h.audio {
		h.audio[i] = make([]float32, p.opts.BlockSize)
	}

	ports := map[int][]float32{
		plugin.PortLeftIn:      h.audio[0],
		plugin.PortRightIn:     h.audio[1],
		plugin.PortLeftOut:     h.audio[2],
		plugin.PortRightOut:    h.audio[3],
		plugin.PortLearn:       h.learn,
		plugin.PortLearnWindow: h.window,
		plugin.PortNoiseFloor:  h.floor,
	}

	for idx, buf := range ports {
		if err := inst.ConnectPort(idx, buf); err != nil {
			return nil, err
		}
	}

	inst.Reserve(p.opts.BlockSize)

	return h, nil
}

// ProcessClip denoises clip and returns a new clip with the same layout.
// Mono input feeds both plugin inputs and keeps the left output.
func (p *Processor) ProcessClip(ctx context.Context, clip *audio.Clip, progress ProgressFunc) (*audio.Clip, Result, error) {
	start := time.Now()

	numCh := clip.NumChannels()
	if numCh < 1 || numCh > 2 {
		return nil, Result{}, fmt.Errorf("%w: %d channels", ErrTooManyChannels, numCh)
	}

	opts := []denoise.Option{denoise.WithLogger(p.log)}
	if p.opts.LegacyFloor {
		opts = append(opts, denoise.WithFloorScale(denoise.FloorScaleLegacy))
	}

	inst, err := plugin.Instantiate(float64(clip.SampleRate), opts...)
	if err != nil {
		return nil, Result{}, err
	}

	h, err := p.connect(inst)
	if err != nil {
		return nil, Result{}, err
	}

	if err := inst.Activate(); err != nil {
		return nil, Result{}, err
	}

	frames := clip.Frames()
	out := &audio.Clip{
		SampleRate: clip.SampleRate,
		BitDepth:   clip.BitDepth,
		Channels:   make([][]float64, numCh),
	}

	for ch := range out.Channels {
		out.Channels[ch] = make([]float64, frames)
	}

	var before, after timestats.Meter

	for offset := 0; offset < frames; offset += p.opts.BlockSize {
		if err := ctx.Err(); err != nil {
			return nil, Result{}, err
		}

		n := min(p.opts.BlockSize, frames-offset)

		for port := range 2 {
			src := clip.Channels[min(port, numCh-1)][offset : offset+n]
			core.Narrow(h.audio[port][:n], src)
		}

		if err := inst.Process(n); err != nil {
			return nil, Result{}, fmt.Errorf("pipeline: frame %d: %w", offset, err)
		}

		for ch := range numCh {
			core.Widen(out.Channels[ch][offset:offset+n], h.audio[2+ch][:n])
			before.Update(clip.Channels[ch][offset : offset+n])
			after.Update(out.Channels[ch][offset : offset+n])
		}

		if progress != nil {
			progress(offset+n, frames)
		}
	}

	if err := inst.Deactivate(); err != nil {
		return nil, Result{}, err
	}

	res := Result{
		SampleRate: clip.SampleRate,
		Channels:   numCh,
		Frames:     frames,
		Duration:   clip.Duration(),
		Before:     before.Levels(),
		After:      after.Levels(),
		Gate:       inst.Engine().Stats(),
		Elapsed:    time.Since(start),
	}

	return out, res, nil
}

// ProcessFile denoises the WAV file in into out.
func (p *Processor) ProcessFile(ctx context.Context, in, out string, progress ProgressFunc) (Result, error) {
	log := p.log.WithFields(logrus.Fields{
		"function": "ProcessFile",
		"input":    in,
	})

	clip, err := audio.ReadFile(in)
	if err != nil {
		log.WithError(err).Error("Failed to read input")
		return Result{}, err
	}

	log.WithFields(logrus.Fields{
		"sample_rate": clip.SampleRate,
		"channels":    clip.NumChannels(),
		"bit_depth":   clip.BitDepth,
		"duration":    clip.Duration().String(),
	}).Debug("Input decoded")

	cleaned, res, err := p.ProcessClip(ctx, clip, progress)
	if err != nil {
		log.WithError(err).Error("Denoising failed")
		return Result{}, err
	}

	if err := audio.WriteFile(out, cleaned); err != nil {
		log.WithError(err).Error("Failed to write output")
		return Result{}, err
	}

	res.Input = in
	res.Output = out

	log.WithFields(logrus.Fields{
		"output":       out,
		"reduction_db": res.Reduction(),
		"gated_ratio":  res.Gate.GatedRatio(),
		"elapsed":      res.Elapsed.String(),
	}).Info("File denoised")

	return res, nil
}

// OutputPath derives the output file name for input: the suffix is inserted
// before the extension and, when dir is not empty, the file is placed in dir.
func OutputPath(input, dir, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext) + suffix + ext

	if dir == "" {
		dir = filepath.Dir(input)
	}

	return filepath.Join(dir, base)
}
