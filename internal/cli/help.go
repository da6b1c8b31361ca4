package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)
)

// StyledHelpPrinter returns a kong help printer rendering arguments, flags,
// defaults and environment variables with lipgloss.
func StyledHelpPrinter(kong.HelpOptions) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render(AppTitle))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(ctx.Model.Help))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s [flags] <files> ...", ctx.Model.Name))
		sb.WriteString("\n")

		writeHelpSection(&sb, "Arguments:", helpArgStyle, positionalEntries(ctx.Model.Node))
		writeHelpSection(&sb, "Flags:", helpFlagStyle, flagEntries(ctx.Model.Node))

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())

		return nil
	}
}

// helpEntry is one line of a help section: a styled label, its help text
// and parenthesised notes such as the default value.
type helpEntry struct {
	label string
	help  string
	notes []string
}

func writeHelpSection(sb *strings.Builder, title string, labelStyle lipgloss.Style, entries []helpEntry) {
	if len(entries) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")

	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(labelStyle.Render(e.label))

		if e.help != "" {
			sb.WriteString("  ")
			sb.WriteString(e.help)
		}

		if len(e.notes) > 0 {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(" + strings.Join(e.notes, ", ") + ")"))
		}

		sb.WriteString("\n")
	}
}

func positionalEntries(node *kong.Node) []helpEntry {
	entries := make([]helpEntry, 0, len(node.Positional))
	for _, arg := range node.Positional {
		entries = append(entries, helpEntry{label: arg.Summary(), help: arg.Help})
	}

	return entries
}

// flagEntries lists the visible flags, led by the implicit --help.
func flagEntries(node *kong.Node) []helpEntry {
	entries := []helpEntry{{label: "-h, --help", help: "Show context-sensitive help."}}

	for _, f := range node.Flags {
		if f.Name == "help" || f.Hidden {
			continue
		}

		e := helpEntry{label: flagLabel(f), help: f.Help}
		if !f.IsBool() && f.Default != "" {
			e.notes = append(e.notes, "default: "+f.Default)
		}

		if len(f.Envs) > 0 {
			e.notes = append(e.notes, "$"+f.Envs[0])
		}

		entries = append(entries, e)
	}

	return entries
}

// flagLabel renders "-s, --name=PLACEHOLDER"; booleans take no value.
func flagLabel(f *kong.Flag) string {
	label := "--" + f.Name
	if f.Short != 0 {
		label = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
	}

	if f.IsBool() {
		return label
	}

	placeholder := f.PlaceHolder
	if placeholder == "" {
		placeholder = strings.ReplaceAll(f.Name, "-", "_")
	}

	return label + "=" + strings.ToUpper(placeholder)
}
