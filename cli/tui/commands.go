package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"golang.design/x/clipboard"

	"github.com/malonaz/spendchat/internal/types"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error

	// writeClipboard is replaced in tests.
	writeClipboard = func(text string) error {
		clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
		if clipboardErr != nil {
			return errors.Wrap(clipboardErr, "initializing clipboard")
		}
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}
)

// scheduleRefresh arms the next periodic refresh, if enabled.
func (m *Model) scheduleRefresh() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg { return types.RefreshTickMsg{} })
}

// copyLastReply copies the most recent assistant message.
func (m *Model) copyLastReply() tea.Cmd {
	reply := m.chat.Thread().LastReply()
	if reply == nil {
		return nil
	}
	content := reply.Content
	return func() tea.Msg {
		return types.ClipboardMsg{Err: writeClipboard(content)}
	}
}
