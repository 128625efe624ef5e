package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/huddle/internal/tui/input"
)

const keyHints = "enter send · tab complete · ctrl+y copy reply · pgup/pgdown scroll · esc quit"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("huddle"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	frameW, _ := m.styles.PromptStyle.GetFrameSize()
	b.WriteString(m.styles.PromptStyle.Width(max(m.width-frameW, 0)).Render(m.prompt.View()))
	b.WriteString("\n")

	suggestions := input.SuggestionLines(m.prompt.Value(), promptCommands, m.width)
	for i := 0; i < maxSuggestionLines(); i++ {
		if i < len(suggestions) {
			b.WriteString(m.styles.SuggestionStyle.Render(suggestions[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

// renderTranscript renders every message wrapped to width.
func (m Model) renderTranscript(width int) string {
	body := m.styles.MessageStyle
	if width > 0 {
		frameW, _ := body.GetFrameSize()
		body = body.Width(max(width-frameW, 1))
	}

	blocks := make([]string, 0, len(m.transcript))
	for _, msg := range m.transcript {
		label := m.styles.BotLabelStyle.Render("huddle")
		if msg.from == speakerUser {
			label = m.styles.UserLabelStyle.Render("you")
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, label, body.Render(msg.text)))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderStatus() string {
	status := m.styles.StatusStyle.Render(keyHints)
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusErr {
			style = m.styles.ErrorStyle
		}
		status = style.Render(m.statusMsg) + m.styles.StatusStyle.Render(" · "+keyHints)
	}
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, "…")
	}
	return status
}
