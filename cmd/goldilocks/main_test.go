package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goldilocks/internal/audio"
	"github.com/cwbudde/goldilocks/internal/testutil"
)

func parse(t *testing.T, args ...string) *CLI {
	t.Helper()

	c := &CLI{}
	parser, err := kong.New(c, kong.Name("goldilocks"), vars())
	require.NoError(t, err)

	_, err = parser.Parse(args)
	require.NoError(t, err)

	return c
}

func TestCLIDefaults(t *testing.T) {
	c := parse(t)

	assert.InDelta(t, -57.0, c.NoiseFloor, 1e-12)
	assert.InDelta(t, 15.05, c.LearnWindow, 1e-12)
	assert.Equal(t, 1024, c.BlockSize)
	assert.Equal(t, "-denoised", c.Suffix)
	assert.Equal(t, "auto", c.Progress)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.LegacyFloor)
}

func TestCLIEnvironment(t *testing.T) {
	t.Setenv("GOLDILOCKS_NOISE_FLOOR", "-30")
	t.Setenv("GOLDILOCKS_LEGACY_FLOOR", "true")

	c := parse(t, "--block-size=256")

	assert.InDelta(t, -30.0, c.NoiseFloor, 1e-12)
	assert.True(t, c.LegacyFloor)
	assert.Equal(t, 256, c.BlockSize)
}

func TestCLIRejectsUnknownProgressMode(t *testing.T) {
	parser, err := kong.New(&CLI{}, kong.Name("goldilocks"), vars())
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--progress=fancy"})
	require.Error(t, err)
}

func TestRunPlain(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "hiss.wav")
	bad := filepath.Join(dir, "broken.wav")

	hiss := testutil.DeterministicNoise(9, 1e-4, 2048)
	require.NoError(t, audio.WriteFile(good, &audio.Clip{SampleRate: 48000, BitDepth: 16, Channels: [][]float64{hiss}}))
	require.NoError(t, os.WriteFile(bad, []byte("not a wav"), 0o600))

	c := parse(t, "--noise-floor=-40", good, bad)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var out bytes.Buffer
	failed := runPlain(context.Background(), c, logger, &out)

	assert.Equal(t, 1, failed)
	assert.Contains(t, out.String(), "hiss.wav → hiss-denoised.wav")
	assert.Contains(t, out.String(), "1 denoised, 1 failed")

	var sawError bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			sawError = true
		}
	}
	assert.True(t, sawError)

	clip, err := audio.ReadFile(filepath.Join(dir, "hiss-denoised.wav"))
	require.NoError(t, err)
	testutil.RequireSilent(t, clip.Channels[0], 0)
}
