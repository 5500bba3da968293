package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/malonaz/spendchat/cli/tui/chatpanel"
	"github.com/malonaz/spendchat/cli/tui/dashboard"
	"github.com/malonaz/spendchat/internal/configuration"
	"github.com/malonaz/spendchat/internal/debug"
	"github.com/malonaz/spendchat/internal/history"
	"github.com/malonaz/spendchat/internal/thread"
)

const (
	FocusChat FocusedComponent = iota
	FocusDashboard
)

var log *slog.Logger

type FocusedComponent int

// Backend is the expense service, as seen by both panes.
type Backend interface {
	chatpanel.Sender
	dashboard.Fetcher
}

// Model is the root of the UI: the chat pane on the left and the dashboard on the right.
// It owns the refresh token; every bump makes the dashboard reload.
type Model struct {
	ctx    context.Context
	config *configuration.Config

	chat      *chatpanel.Model
	dashboard *dashboard.Model

	refreshToken    int
	refreshInterval time.Duration

	focusedComponent FocusedComponent
	width            int
	height           int
	quitting         bool

	// Alert notifications.
	alert bubbleup.AlertModel
}

// New creates the root model.
func New(ctx context.Context, config *configuration.Config, backend Backend) (*Model, error) {
	log = debug.GetLogger()

	t := thread.New(config.Chat.WelcomeMessage)
	chat, err := chatpanel.New(ctx, backend, t, history.New(config.HistoryFile))
	if err != nil {
		return nil, err
	}

	return &Model{
		ctx:              ctx,
		config:           config,
		chat:             chat,
		dashboard:        dashboard.New(ctx, backend, config.Dashboard.ChartHeight),
		refreshInterval:  config.RefreshInterval(),
		focusedComponent: FocusChat,
		alert:            *bubbleup.NewAlertModel(40, true, 2),
	}, nil
}

// Init mounts both panes; the dashboard performs its first load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.chat.Init(),
		m.dashboard.SetRefreshToken(m.refreshToken),
		m.alert.Init(),
		m.scheduleRefresh(),
	)
}

// RefreshToken returns the current refresh token.
func (m *Model) RefreshToken() int {
	return m.refreshToken
}

// bumpRefreshToken invalidates the dashboard.
func (m *Model) bumpRefreshToken(reason string) tea.Cmd {
	m.refreshToken++
	log.Debug("refreshing dashboard", "token", m.refreshToken, "reason", reason)
	return m.dashboard.SetRefreshToken(m.refreshToken)
}
