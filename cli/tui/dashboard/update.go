package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/malonaz/spendchat/internal/types"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case types.SummaryLoadedMsg:
		if !m.loader.Resolve(msg.Generation, msg.Summary, msg.Err) {
			m.log.Debug("discarding superseded dashboard load", "generation", msg.Generation, "current", m.loader.Generation())
			return m, nil
		}
		m.recalculateLayout()
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd
	}
	return m, nil
}
