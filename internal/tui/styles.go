package tui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "#89b4fa"

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Styles holds the lipgloss styles for the chat, derived from one accent colour.
type Styles struct {
	colorAccent  lipgloss.Color
	colorFgMuted lipgloss.Color
	colorWarning lipgloss.Color

	TitleStyle      lipgloss.Style
	UserLabelStyle  lipgloss.Style
	BotLabelStyle   lipgloss.Style
	MessageStyle    lipgloss.Style
	PromptStyle     lipgloss.Style
	SuggestionStyle lipgloss.Style
	StatusStyle     lipgloss.Style
	ErrorStyle      lipgloss.Style
}

// NewStyles builds the styles for accent. Anything but a hex colour falls back
// to the default accent.
func NewStyles(accent string) *Styles {
	if !hexColor.MatchString(accent) {
		accent = defaultAccent
	}
	s := &Styles{
		colorAccent:  lipgloss.Color(accent),
		colorFgMuted: lipgloss.Color("#6c7086"),
		colorWarning: lipgloss.Color("#f38ba8"),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)
	s.UserLabelStyle = lipgloss.NewStyle().
		Bold(true)
	s.BotLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)
	s.MessageStyle = lipgloss.NewStyle().
		PaddingLeft(2)
	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(0, 1)
	s.SuggestionStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)
	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	return s
}
