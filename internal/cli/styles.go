// Package cli holds the terminal presentation of the goldilocks command:
// lipgloss styles, the styled kong help printer and result summaries.
package cli

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/goldilocks/internal/pipeline"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#D4A017") // porridge gold
	successColor = lipgloss.Color("#00AA00")
	errorColor   = lipgloss.Color("#A40000")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// AppTitle is the heading used by help, version and the progress UI.
const AppTitle = "Goldilocks 🥣"

// PrintVersion prints version information.
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintln(w, TitleStyle.Render(AppTitle))
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Fprintln(w)
}

// PrintError prints an error message.
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// FormatDB renders a level in dB, spelling out infinities.
func FormatDB(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf dB"
	case math.IsInf(v, -1):
		return "-inf dB"
	default:
		return fmt.Sprintf("%.1f dB", v)
	}
}

// FormatResult renders the two-line summary of a processed file.
func FormatResult(res pipeline.Result) string {
	icon := SuccessStyle.Render("✓")

	return fmt.Sprintf(" %s %s → %s\n   %s %s | %s %s | %s %s | %s %.0f%%",
		icon, filepath.Base(res.Input), filepath.Base(res.Output),
		KeyStyle.Render("Before:"), FormatDB(res.Before.RMS_dB),
		KeyStyle.Render("After:"), FormatDB(res.After.RMS_dB),
		KeyStyle.Render("Reduced:"), FormatDB(res.Reduction()),
		KeyStyle.Render("Gated bins:"), 100*res.Gate.GatedRatio())
}

// PrintSummary prints every result followed by a totals line.
func PrintSummary(w io.Writer, results []pipeline.Result, failed int) {
	for _, res := range results {
		fmt.Fprintln(w, FormatResult(res))
	}

	fmt.Fprintf(w, "\n%s %d denoised, %d failed\n", KeyStyle.Render("Done:"), len(results), failed)
}
