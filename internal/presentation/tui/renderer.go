package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/dial/pkg/runner"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return markdown, err
		}
		return r.Render(markdown)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SummaryMarkdown formats a report as a Markdown table.
func SummaryMarkdown(report *runner.Report) string {
	var b strings.Builder
	b.WriteString("# Dial summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Perimeter | %d |\n", report.Perimeter)
	fmt.Fprintf(&b, "| Start | %d |\n", report.Start)
	fmt.Fprintf(&b, "| Commands | %d |\n", report.Commands)
	fmt.Fprintf(&b, "| Landed on zero | %d |\n", report.ZeroLandings)
	fmt.Fprintf(&b, "| Zero crossings | %d |\n", report.Crossings)
	fmt.Fprintf(&b, "| Final position | %d |\n", report.FinalPosition)
	return b.String()
}

// RenderSummary renders the report for a terminal, or returns plain Markdown when pretty is false.
func RenderSummary(report *runner.Report, pretty bool) (string, error) {
	md := SummaryMarkdown(report)
	if !pretty {
		return md, nil
	}
	return NewRenderer()(md)
}
