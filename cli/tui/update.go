package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/malonaz/spendchat/internal/types"
)

type KeyMap struct {
	CycleFocus key.Binding
	Refresh    key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

var keyMap = KeyMap{
	CycleFocus: key.NewBinding(
		key.WithKeys("tab"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
	),
	Copy: key.NewBinding(
		key.WithKeys("alt+w"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyMap.Quit):
			m.dashboard.Close()
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keyMap.CycleFocus):
			cmds = append(cmds, m.cycleFocus())
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMap.Refresh):
			cmds = append(cmds, m.bumpRefreshToken("manual"))
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMap.Copy):
			cmds = append(cmds, m.copyLastReply())
			return m, tea.Batch(cmds...)
		}

	case types.ExpensesAddedMsg:
		cmds = append(cmds,
			m.bumpRefreshToken("expenses added"),
			m.alert.NewAlertCmd(bubbleup.InfoKey, recordedText(msg.Count)),
		)
		return m, tea.Batch(cmds...)

	case types.RefreshTickMsg:
		cmds = append(cmds, m.bumpRefreshToken("interval"), m.scheduleRefresh())
		return m, tea.Batch(cmds...)

	case types.ClipboardMsg:
		if msg.Err != nil {
			log.Warn("copying to clipboard", "error", msg.Err)
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, "Clipboard unavailable"))
		} else {
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!"))
		}
		return m, tea.Batch(cmds...)

	case types.ChatReplyMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case types.SummaryLoadedMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Everything else (keys, mouse, blinks, spinner ticks) goes to both panes.
	// Each pane ignores keys while it does not have focus.
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)
	m.dashboard, cmd = m.dashboard.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) cycleFocus() tea.Cmd {
	switch m.focusedComponent {
	case FocusChat:
		m.focusedComponent = FocusDashboard
		m.chat.Blur()
		m.dashboard.Focus()
		return nil
	default:
		m.focusedComponent = FocusChat
		m.dashboard.Blur()
		return m.chat.Focus()
	}
}

func recordedText(count int) string {
	if count == 1 {
		return "Recorded 1 expense"
	}
	return fmt.Sprintf("Recorded %d expenses", count)
}
