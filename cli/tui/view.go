package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/malonaz/spendchat/cli/tui/styles"
)

// recalculateLayout splits the window between the two panes.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	chatWidth, dashboardWidth := m.paneWidths()
	frame := styles.PaneStyle.GetHorizontalFrameSize()
	m.chat.SetSize(chatWidth, m.height)
	m.dashboard.SetSize(dashboardWidth-frame, m.height-styles.PaneStyle.GetVerticalFrameSize())
}

func (m *Model) paneWidths() (int, int) {
	chatWidth := m.width * styles.ChatWidthPercent / 100
	dashboardWidth := m.width - chatWidth - styles.PaneGap
	if dashboardWidth < styles.MinDashboardWidth {
		dashboardWidth = min(styles.MinDashboardWidth, m.width/2)
		chatWidth = m.width - dashboardWidth - styles.PaneGap
	}
	return chatWidth, dashboardWidth
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	pane := styles.PaneStyle
	if m.focusedComponent == FocusDashboard {
		pane = styles.FocusedPaneStyle
	}
	_, dashboardWidth := m.paneWidths()
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.chat.View(),
		strings.Repeat(" ", styles.PaneGap),
		pane.Width(dashboardWidth-pane.GetHorizontalFrameSize()).Render(m.dashboard.View()),
	)
	return m.alert.Render(content)
}
