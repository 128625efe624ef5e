package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/huddle/internal/report"
)

// Color definitions for the report.
var (
	// Banner: bold
	colorBanner = color.New(color.Bold)

	// Window headers: bold cyan
	colorHeader = color.New(color.FgCyan, color.Bold)

	// People: yellow to make them pop
	colorPeople = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// reportStyle returns the report decorations. Without colour it is the zero Style.
func reportStyle(enabled bool) report.Style {
	if !enabled {
		return report.Style{}
	}
	// The caller already checked the terminal, so override color.NoColor.
	for _, c := range []*color.Color{colorBanner, colorHeader, colorPeople} {
		c.EnableColor()
	}
	return report.Style{
		Banner: sprintWith(colorBanner),
		Header: sprintWith(colorHeader),
		People: sprintWith(colorPeople),
	}
}

func sprintWith(c *color.Color) func(string) string {
	return func(s string) string {
		return c.Sprint(s)
	}
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
