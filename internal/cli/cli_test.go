package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goldilocks/dsp/denoise"
	"github.com/cwbudde/goldilocks/internal/pipeline"
	timestats "github.com/cwbudde/goldilocks/stats/time"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "1.2.3")

	assert.Contains(t, buf.String(), "Goldilocks")
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, "no input files")

	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "no input files")
}

func TestFormatDB(t *testing.T) {
	assert.Equal(t, "-12.3 dB", FormatDB(-12.34))
	assert.Equal(t, "+inf dB", FormatDB(math.Inf(1)))
	assert.Equal(t, "-inf dB", FormatDB(math.Inf(-1)))
}

func TestPrintSummary(t *testing.T) {
	res := pipeline.Result{
		Input:  "/tmp/in/take.wav",
		Output: "/tmp/out/take-denoised.wav",
		Before: timestats.Measure([]float64{0.5, -0.5}),
		After:  timestats.Measure([]float64{0.05, -0.05}),
		Gate:   denoise.Stats{Bins: 4, GatedBins: 1},
	}

	var buf bytes.Buffer
	PrintSummary(&buf, []pipeline.Result{res}, 2)

	out := buf.String()
	assert.Contains(t, out, "take.wav → take-denoised.wav")
	assert.Contains(t, out, "-6.0 dB")
	assert.Contains(t, out, "20.0 dB")
	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "1 denoised, 2 failed")
}

type helpCLI struct {
	Floor   float64  `name:"noise-floor" default:"-57" env:"TEST_FLOOR" help:"Noise floor in dB."`
	Verbose bool     `short:"V" help:"Debug logging."`
	Secret  string   `hidden:"" help:"Not shown."`
	Files   []string `arg:"" optional:"" help:"Input files."`
}

func TestStyledHelpPrinter(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exited := false
	parser, err := kong.New(&helpCLI{},
		kong.Name("goldilocks"),
		kong.Description("Spectral noise gate"),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{Compact: true})),
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(int) { exited = true }),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	out := stdout.String()
	assert.True(t, exited)
	assert.Contains(t, out, "Spectral noise gate")
	assert.Contains(t, out, "goldilocks [flags] <files> ...")
	assert.Contains(t, out, "--noise-floor=NOISE_FLOOR")
	assert.Contains(t, out, "default: -57")
	assert.Contains(t, out, "$TEST_FLOOR")
	assert.Contains(t, out, "-V, --verbose")
	assert.Contains(t, out, "Arguments:")
	assert.Contains(t, out, "Input files.")
	assert.NotContains(t, out, "--secret")
	assert.NotContains(t, out, "--verbose=")
}
