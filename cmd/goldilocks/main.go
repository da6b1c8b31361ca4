package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/goldilocks/dsp/denoise"
	"github.com/cwbudde/goldilocks/internal/cli"
	"github.com/cwbudde/goldilocks/internal/logging"
	"github.com/cwbudde/goldilocks/internal/pipeline"
	"github.com/cwbudde/goldilocks/internal/ui"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Version     bool     `short:"v" help:"Show version information"`
	NoiseFloor  float64  `name:"noise-floor" default:"${noise_floor}" env:"GOLDILOCKS_NOISE_FLOOR" help:"Spectral bins quieter than this level (dB) are removed"`
	Learn       bool     `env:"GOLDILOCKS_LEARN" help:"Accumulate a per-bin noise profile while processing"`
	LearnWindow float64  `name:"learn-window" default:"${learn_window}" env:"GOLDILOCKS_LEARN_WINDOW" help:"Learn window in seconds"`
	BlockSize   int      `name:"block-size" default:"1024" env:"GOLDILOCKS_BLOCK_SIZE" help:"Host block size in samples"`
	LegacyFloor bool     `name:"legacy-floor" env:"GOLDILOCKS_LEGACY_FLOOR" help:"Use the legacy 20*10^(dB/20) noise floor scale"`
	Suffix      string   `default:"-denoised" env:"GOLDILOCKS_SUFFIX" help:"Suffix added to output file names"`
	OutputDir   string   `name:"output-dir" type:"existingdir" env:"GOLDILOCKS_OUTPUT_DIR" help:"Directory for output files (default: next to input)"`
	Progress    string   `enum:"auto,tui,plain" default:"auto" env:"GOLDILOCKS_PROGRESS" help:"Progress display: auto, tui or plain"`
	Verbose     bool     `short:"V" help:"Enable debug logging"`
	LogFormat   string   `name:"log-format" enum:"text,json" default:"text" env:"GOLDILOCKS_LOG_FORMAT" help:"Log format: text or json"`
	Files       []string `arg:"" name:"files" help:"WAV files to denoise" type:"existingfile" optional:""`
}

func vars() kong.Vars {
	return kong.Vars{
		"version":      version,
		"noise_floor":  strconv.FormatFloat(denoise.DefaultNoiseFloorDB, 'g', -1, 64),
		"learn_window": strconv.FormatFloat(denoise.DefaultLearnWindow, 'g', -1, 64),
	}
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("goldilocks"),
		kong.Description("Spectral noise gate for WAV files"),
		kong.UsageOnError(),
		vars(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(os.Stdout, version)
		os.Exit(0)
	}

	if len(cliArgs.Files) == 0 {
		cli.PrintError(os.Stderr, "No input files specified")
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cliArgs.Verbose, cliArgs.LogFormat)
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	useTUI := cliArgs.Progress == "tui" ||
		(cliArgs.Progress == "auto" && isatty.IsTerminal(os.Stdout.Fd()))

	var failed int
	if useTUI {
		// The TUI owns the terminal; route log lines away from it.
		logger.SetOutput(io.Discard)
		failed, err = runTUI(runCtx, cliArgs, logger)
	} else {
		failed = runPlain(runCtx, cliArgs, logger, os.Stdout)
	}

	if err != nil {
		cli.PrintError(os.Stderr, fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func newProcessor(c *CLI, logger *logrus.Logger) *pipeline.Processor {
	return pipeline.New(pipeline.Options{
		Controls: denoise.Controls{
			Learn:        c.Learn,
			LearnWindow:  c.LearnWindow,
			NoiseFloorDB: c.NoiseFloor,
		},
		BlockSize:   c.BlockSize,
		LegacyFloor: c.LegacyFloor,
	}, logging.Component(logger, "pipeline"))
}

// runPlain processes every file sequentially, logging progress, and prints a
// summary to w. It returns the number of failed files.
func runPlain(ctx context.Context, c *CLI, logger *logrus.Logger, w io.Writer) int {
	proc := newProcessor(c, logger)

	var (
		results []pipeline.Result
		failed  int
	)

	for _, in := range c.Files {
		out := pipeline.OutputPath(in, c.OutputDir, c.Suffix)

		res, err := proc.ProcessFile(ctx, in, out, nil)
		if err != nil {
			failed++
			continue
		}

		results = append(results, res)
	}

	cli.PrintSummary(w, results, failed)

	return failed
}

// runTUI processes files in the background while a Bubbletea program shows
// per-file progress.
func runTUI(ctx context.Context, c *CLI, logger *logrus.Logger) (int, error) {
	proc := newProcessor(c, logger)
	model := ui.NewModel(c.Files)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	go func() {
		for i, in := range c.Files {
			out := pipeline.OutputPath(in, c.OutputDir, c.Suffix)
			p.Send(ui.FileStartMsg{FileIndex: i, OutputPath: out})

			res, err := proc.ProcessFile(ctx, in, out, progressSender(p, i))
			p.Send(ui.FileCompleteMsg{FileIndex: i, Result: res, Error: err})
		}

		p.Send(ui.AllCompleteMsg{})
	}()

	final, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := final.(ui.Model)
	if !ok {
		return 0, fmt.Errorf("unexpected model type %T", final)
	}

	return m.FailedFiles, nil
}

// progressSender throttles progress updates to whole percent steps.
func progressSender(p *tea.Program, index int) pipeline.ProgressFunc {
	last := -1

	return func(done, total int) {
		pct := done * 100 / total
		if pct == last {
			return
		}

		last = pct
		p.Send(ui.ProgressMsg{FileIndex: index, Done: done, Total: total})
	}
}
