package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI output.
var (
	// Live programs: bold red
	colorLive = color.New(color.FgRed, color.Bold)

	// Completed programs: dim/grey
	colorDone = color.New(color.FgWhite, color.Faint)

	// Scheduled programs: default cyan
	colorScheduled = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatStatus colors a program row according to its broadcast status.
func formatStatus(scheduled, live bool, s string) string {
	switch {
	case live:
		return colorLive.Sprint(s)
	case scheduled:
		return colorScheduled.Sprint(s)
	default:
		return colorDone.Sprint(s)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
