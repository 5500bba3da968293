package chatpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/malonaz/spendchat/cli/tui/styles"
	"github.com/malonaz/spendchat/internal/types"
)

// View renders the pane.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(styles.TextAreaStyle.Render(m.textarea.View()))
	b.WriteString("\n")
	if m.thread.InFlight() {
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), styles.PendingStyle.Render(pending)))
	} else {
		b.WriteString(styles.HelpStyle.Render("Ctrl+J send · Alt+P/N history · Tab dashboard · Alt+W copy"))
	}
	return b.String()
}

func (m *Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Width(m.width).Render(" "+title),
		styles.HelpStyle.Render(subtitle),
	)
}

func (m *Model) renderMessages() string {
	var b strings.Builder
	bubbleWidth := max(m.width-6, 10)
	for i, msg := range m.thread.Messages() {
		if i > 0 {
			b.WriteString("\n")
		}
		switch msg.Role {
		case types.RoleUser:
			content := lipgloss.NewStyle().Width(bubbleWidth - styles.UserMessageStyle.GetHorizontalFrameSize()).Render(msg.Content)
			b.WriteString(styles.UserMessageStyle.Render(content))
		case types.RoleAssistant:
			b.WriteString(styles.AssistantMessageStyle.Render(m.renderer.Render(msg.ID, msg.Content)))
		case types.RoleSystem:
			b.WriteString(styles.SystemStyle.Render(msg.Content))
		}
	}
	return b.String()
}
