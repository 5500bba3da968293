package chatpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/malonaz/spendchat/internal/types"
)

// submit hands the draft to the thread and issues the send.
// Returns nil when the thread refused it (blank draft or a send already in flight).
func (m *Model) submit() tea.Cmd {
	m.thread.SetDraft(m.textarea.Value())
	text, ok := m.thread.Submit()
	if !ok {
		return nil
	}
	m.history.Add(text)
	m.historyNavigating = false
	m.textarea.Reset()
	m.adjustTextareaHeight()
	m.refreshViewport(true)
	return m.send(text)
}

func (m *Model) send(text string) tea.Cmd {
	ctx, sender, log := m.ctx, m.sender, m.log
	return func() tea.Msg {
		response, err := sender.SendChatMessage(ctx, text)
		if err != nil {
			log.Warn("sending chat message", "error", err)
		}
		return types.ChatReplyMsg{Response: response, Err: err}
	}
}

func expensesAdded(count int) tea.Cmd {
	return func() tea.Msg { return types.ExpensesAddedMsg{Count: count} }
}
