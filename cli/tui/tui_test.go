package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malonaz/spendchat/internal/configuration"
	"github.com/malonaz/spendchat/internal/types"
)

type fakeBackend struct {
	reply   *types.ChatResponse
	summary *types.DashboardSummary
	fetches int
}

func (f *fakeBackend) SendChatMessage(context.Context, string) (*types.ChatResponse, error) {
	return f.reply, nil
}

func (f *fakeBackend) FetchDashboardSummary(context.Context) (*types.DashboardSummary, error) {
	f.fetches++
	return f.summary, nil
}

func newTestModel(t *testing.T, configure func(*configuration.Config)) *Model {
	t.Helper()
	config := configuration.Default()
	if configure != nil {
		configure(config)
	}
	m, err := New(context.Background(), config, &fakeBackend{summary: &types.DashboardSummary{}})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestExpensesAddedBumpsRefreshToken(t *testing.T) {
	m := newTestModel(t, nil)
	require.Equal(t, 0, m.RefreshToken())

	m.Update(types.ExpensesAddedMsg{Count: 2})
	assert.Equal(t, 1, m.RefreshToken())
	assert.True(t, m.dashboard.Loading())

	m.Update(types.ExpensesAddedMsg{Count: 1})
	assert.Equal(t, 2, m.RefreshToken())
}

func TestManualAndPeriodicRefresh(t *testing.T) {
	m := newTestModel(t, func(c *configuration.Config) { c.Dashboard.RefreshIntervalSeconds = 30 })
	assert.Equal(t, 30*time.Second, m.refreshInterval)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, 1, m.RefreshToken())

	_, cmd := m.Update(types.RefreshTickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 2, m.RefreshToken())
}

func TestPeriodicRefreshDisabledByDefault(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Nil(t, m.scheduleRefresh())
}

func TestReplyReachesChatOnly(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("lunch 12")})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	require.True(t, m.chat.Thread().InFlight())

	m.Update(types.ChatReplyMsg{Response: &types.ChatResponse{Reply: "Logged lunch."}})
	assert.False(t, m.chat.Thread().InFlight())
	assert.Equal(t, 3, m.chat.Thread().Len())
	assert.Equal(t, 0, m.RefreshToken())
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t, nil)
	require.True(t, m.chat.Focused())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusDashboard, m.focusedComponent)
	assert.False(t, m.chat.Focused())
	assert.True(t, m.dashboard.Focused())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusChat, m.focusedComponent)
	assert.True(t, m.chat.Focused())
	assert.False(t, m.dashboard.Focused())
}

func TestCopyLastReply(t *testing.T) {
	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error { copied = text; return nil }
	t.Cleanup(func() { writeClipboard = original })

	m := newTestModel(t, func(c *configuration.Config) { c.Chat.WelcomeMessage = "hello there" })
	cmd := m.copyLastReply()
	require.NotNil(t, cmd)
	assert.Equal(t, types.ClipboardMsg{}, cmd())
	assert.Equal(t, "hello there", copied)
}

func TestCopyFailureIsReported(t *testing.T) {
	original := writeClipboard
	writeClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { writeClipboard = original })

	m := newTestModel(t, nil)
	msg := m.copyLastReply()()
	clipboardMsg, ok := msg.(types.ClipboardMsg)
	require.True(t, ok)
	assert.Error(t, clipboardMsg.Err)
}

func TestQuitClosesDashboard(t *testing.T) {
	m := newTestModel(t, nil)
	generation := m.dashboard.SetRefreshToken(0)
	require.NotNil(t, generation)
	loaded := generation()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)

	m.Update(loaded)
	assert.Nil(t, m.dashboard.Summary())
	assert.Empty(t, m.View())
}

func TestViewShowsBothPanes(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	assert.Contains(t, view, "Expense Assistant")
	assert.Contains(t, view, "Spending Overview")
	assert.Contains(t, view, "$0.00")
}

func TestRecordedText(t *testing.T) {
	assert.Equal(t, "Recorded 1 expense", recordedText(1))
	assert.Equal(t, "Recorded 3 expenses", recordedText(3))
}
