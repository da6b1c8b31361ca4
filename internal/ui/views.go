package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/goldilocks/internal/cli"
)

const boxWidth = 60

func renderProcessingView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderOverallProgress(m))

	return b.String()
}

func renderHeader(m Model) string {
	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Denoising %d file(s)", len(m.Files)))

	return cli.TitleStyle.UnsetMarginBottom().Render(cli.AppTitle+" - Spectral Noise Gate") + "\n" + subtitle
}

func renderFileEntry(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		return cli.FormatResult(file.Result)

	case StatusDenoising:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s → %s\n%s",
			icon, fileName, filepath.Base(file.OutputPath), renderFileDetails(file))

	case StatusError:
		return fmt.Sprintf(" %s %s\n   %v", cli.ErrorStyle.Render("✗"), fileName, file.Error)

	default:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, fileName)
	}
}

func renderFileDetails(file FileProgress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#D4A017")).
		Padding(0, 1).
		Width(boxWidth)

	elapsed := file.Elapsed.Seconds()

	var remaining float64
	if file.Progress > 0 {
		remaining = elapsed/file.Progress - elapsed
	}

	content := renderProgressBar(file.Progress, 40) + "\n" +
		fmt.Sprintf("⏱  Elapsed: %.1fs | Remaining: ~%.1fs", elapsed, remaining)

	return box.Render(content)
}

func renderProgressBar(progress float64, width int) string {
	progress = max(0, min(1, progress))
	filled := int(progress * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return fmt.Sprintf("%s %d%%", bar, int(progress*100))
}

func renderOverallProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(boxWidth)

	content := fmt.Sprintf("Overall Progress: %d/%d complete", m.CompletedFiles, len(m.Files))
	if m.valid(m.CurrentIndex) {
		content = fmt.Sprintf("Denoising file %d of %d (%d complete)",
			m.CurrentIndex+1, len(m.Files), m.CompletedFiles)
	}

	return box.Render(content)
}

func renderCompletionSummary(m Model) string {
	var b strings.Builder

	b.WriteString(cli.SuccessStyle.Bold(true).Render("✨ Denoising Complete!"))
	b.WriteString("\n\n")

	for _, file := range m.Files {
		if file.Status == StatusComplete || file.Status == StatusError {
			b.WriteString(renderFileEntry(file))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", boxWidth))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d denoised, %d failed\n", m.CompletedFiles, m.FailedFiles))

	return b.String()
}
