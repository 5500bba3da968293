package dashboard

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/malonaz/spendchat/cli/tui/styles"
	"github.com/malonaz/spendchat/internal/debug"
	"github.com/malonaz/spendchat/internal/summary"
	"github.com/malonaz/spendchat/internal/types"
)

// Fetcher loads the dashboard summary from the expense service.
type Fetcher interface {
	FetchDashboardSummary(ctx context.Context) (*types.DashboardSummary, error)
}

// Model is the dashboard pane. It reloads its summary every time the refresh token
// handed to SetRefreshToken changes.
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	log     *slog.Logger

	loader summary.Loader
	series summary.Series

	// Last refresh token seen. mounted is false until the first one arrives.
	token   int
	mounted bool

	feed      viewport.Model
	chartRows int

	width   int
	height  int
	ready   bool
	focused bool
}

// New creates a dashboard pane. chartRows is the height of the daily totals chart.
func New(ctx context.Context, fetcher Fetcher, chartRows int) *Model {
	if chartRows <= 0 {
		chartRows = styles.DefaultChartRows
	}
	return &Model{
		ctx:       ctx,
		fetcher:   fetcher,
		log:       debug.GetLogger(),
		chartRows: chartRows,
	}
}

// SetRefreshToken starts a load when the token differs from the last one seen.
// The first call always loads.
func (m *Model) SetRefreshToken(token int) tea.Cmd {
	if m.mounted && token == m.token {
		return nil
	}
	m.mounted = true
	m.token = token
	return m.load(m.loader.Begin())
}

// Close tears the pane down. Loads still in flight are dropped when they complete.
func (m *Model) Close() {
	m.loader.Close()
}

// Summary returns the last successfully loaded summary, nil before the first one.
func (m *Model) Summary() *types.DashboardSummary {
	return m.loader.Summary()
}

// Loading returns true while a load is outstanding.
func (m *Model) Loading() bool {
	return m.loader.Loading()
}

// Focus lets the feed scroll with the keyboard.
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops keyboard scrolling.
func (m *Model) Blur() {
	m.focused = false
}

// Focused returns true if the pane has keyboard focus.
func (m *Model) Focused() bool {
	return m.focused
}

func (m *Model) load(generation uint64) tea.Cmd {
	ctx, fetcher, log := m.ctx, m.fetcher, m.log
	return func() tea.Msg {
		s, err := fetcher.FetchDashboardSummary(ctx)
		if err != nil {
			log.Warn("fetching dashboard summary", "generation", generation, "error", err)
		}
		return types.SummaryLoadedMsg{Generation: generation, Summary: s, Err: err}
	}
}
