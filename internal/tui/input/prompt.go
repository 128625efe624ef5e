// Package input matches prompt text against slash commands.
package input

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Command describes a slash command suggestion.
type Command struct {
	Name        string
	Description string
}

// Matching returns the commands whose name starts with value. Only a single
// word starting with "/" is matched.
func Matching(value string, commands []Command) []Command {
	prefix := strings.ToLower(strings.TrimSpace(value))
	if !strings.HasPrefix(prefix, "/") || strings.Contains(prefix, " ") {
		return nil
	}

	matches := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// Complete returns the first matching command name and whether one exists.
func Complete(value string, commands []Command) (string, bool) {
	matches := Matching(value, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}

// SuggestionLines renders one aligned line per matching command, truncated to width.
func SuggestionLines(value string, commands []Command, width int) []string {
	matches := Matching(value, commands)
	if len(matches) == 0 {
		return nil
	}

	nameWidth := 0
	for _, cmd := range matches {
		nameWidth = max(nameWidth, runewidth.StringWidth(cmd.Name))
	}

	lines := make([]string, 0, len(matches))
	for _, cmd := range matches {
		line := "  " + runewidth.FillRight(cmd.Name, nameWidth) + "  " + cmd.Description
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		lines = append(lines, line)
	}
	return lines
}
