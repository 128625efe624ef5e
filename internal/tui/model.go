// Package tui provides the chat terminal user interface for huddle.
package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/huddle/internal/config"
	"github.com/javiermolinar/huddle/internal/tui/input"
)

// Replier answers chat messages.
type Replier interface {
	Welcome() string
	Reply(text string) string
}

type speaker int

const (
	speakerBot speaker = iota
	speakerUser
)

// message is one transcript entry.
type message struct {
	from speaker
	text string
}

var promptCommands = []input.Command{
	{Name: "/help", Description: "Explain the message format"},
	{Name: "/example", Description: "Show a sample message"},
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// Layout constants.
const (
	titleLines        = 1
	statusLines       = 1
	promptBorderLines = 2
	minViewportHeight = 3
)

// Model is the chat TUI model.
type Model struct {
	bot    Replier
	logger *zap.Logger
	styles *Styles

	prompt   textinput.Model
	viewport viewport.Model
	ready    bool

	transcript []message
	lastReply  string
	statusMsg  string
	statusErr  bool

	width  int
	height int
}

// New creates a new chat model.
func New(bot Replier, cfg config.UIConfig, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	prompt := textinput.New()
	prompt.Placeholder = "alice: 2 may 10:00+2h. bob: 2 may lunch"
	prompt.Prompt = "> "
	prompt.Focus()

	m := Model{
		bot:    bot,
		logger: logger,
		styles: NewStyles(cfg.Accent),
		prompt: prompt,
	}
	welcome := bot.Welcome()
	m.transcript = []message{{from: speakerBot, text: welcome}}
	m.lastReply = welcome
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the chat TUI and blocks until it exits.
func Run(bot Replier, cfg config.UIConfig, logger *zap.Logger) error {
	p := tea.NewProgram(New(bot, cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
