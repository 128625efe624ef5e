package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/huddle/internal/tui/input"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key press", zap.String("key", msg.String()))

	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.send(), nil

	case "tab":
		if name, ok := input.Complete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(name)
			m.prompt.CursorEnd()
		}
		return m, nil

	case "ctrl+y":
		return m.copyLastReply(), nil

	case "pgup", "pgdown":
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.statusMsg = ""
	m.statusErr = false
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// send answers the prompt and appends both sides to the transcript.
func (m Model) send() Model {
	text := strings.TrimSpace(m.prompt.Value())
	if text == "" {
		return m
	}

	reply := m.bot.Reply(text)
	m.logger.Debug("replied", zap.Int("input_len", len(text)), zap.Int("reply_len", len(reply)))

	// Copy before appending so earlier Model values keep their transcript.
	transcript := make([]message, len(m.transcript), len(m.transcript)+2)
	copy(transcript, m.transcript)
	m.transcript = append(transcript,
		message{from: speakerUser, text: text},
		message{from: speakerBot, text: reply},
	)
	m.lastReply = reply
	m.statusMsg = ""
	m.statusErr = false
	m.prompt.Reset()
	m.refreshTranscript()
	return m
}

func (m Model) copyLastReply() Model {
	if m.lastReply == "" {
		m.statusMsg = "Nothing to copy"
		m.statusErr = false
		return m
	}
	if err := copyToClipboard(m.lastReply); err != nil {
		m.logger.Warn("clipboard copy failed", zap.Error(err))
		m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		m.statusErr = true
		return m
	}
	m.statusMsg = "Copied last reply"
	m.statusErr = false
	return m
}

// resize lays out the viewport and prompt for the current window size.
func (m *Model) resize() {
	vpHeight := m.height - titleLines - statusLines - promptBorderLines - 1 - maxSuggestionLines()
	vpHeight = max(vpHeight, minViewportHeight)

	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}

	frameW, _ := m.styles.PromptStyle.GetFrameSize()
	m.prompt.Width = max(m.width-frameW-len(m.prompt.Prompt)-1, 1)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript(m.width))
	m.viewport.GotoBottom()
}

func maxSuggestionLines() int {
	return len(promptCommands)
}
