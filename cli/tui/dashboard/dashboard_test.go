package dashboard

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malonaz/spendchat/internal/types"
)

// fakeFetcher returns its responses in order, repeating the last one.
type fakeFetcher struct {
	summaries []*types.DashboardSummary
	errs      []error
	calls     int
}

func (f *fakeFetcher) FetchDashboardSummary(context.Context) (*types.DashboardSummary, error) {
	i := min(f.calls, len(f.summaries)-1)
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return f.summaries[i], err
}

func newTestModel(fetcher Fetcher) *Model {
	m := New(context.Background(), fetcher, 4)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	return m
}

func category(name string) *string { return &name }

func sampleSummary(today string) *types.DashboardSummary {
	return &types.DashboardSummary{
		TodayTotal: decimal.RequireFromString(today),
		MonthTotal: decimal.RequireFromString("120.5"),
		RecentExpenses: []*types.Expense{
			{ID: 2, Merchant: "Blue Bottle", Amount: decimal.RequireFromString("4.5"), ExpenseDate: "2024-05-02", Category: category("Coffee")},
			{ID: 1, Merchant: "Walmart", Amount: decimal.RequireFromString("70"), ExpenseDate: "2024-05-01"},
		},
	}
}

func load(t *testing.T, cmd tea.Cmd) types.SummaryLoadedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(types.SummaryLoadedMsg)
	require.True(t, ok)
	return msg
}

func TestLoadsOnMountAndOnTokenChange(t *testing.T) {
	fetcher := &fakeFetcher{summaries: []*types.DashboardSummary{sampleSummary("1")}}
	m := newTestModel(fetcher)

	cmd := m.SetRefreshToken(0)
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	m, _ = m.Update(load(t, cmd))
	assert.False(t, m.Loading())
	assert.NotNil(t, m.Summary())

	assert.Nil(t, m.SetRefreshToken(0))
	assert.NotNil(t, m.SetRefreshToken(1))
}

func TestStaleLoadNeverOverwrites(t *testing.T) {
	older, newer := sampleSummary("1"), sampleSummary("2")
	fetcher := &fakeFetcher{summaries: []*types.DashboardSummary{older, newer}}
	m := newTestModel(fetcher)

	first := load(t, m.SetRefreshToken(1))
	second := load(t, m.SetRefreshToken(2))

	m, _ = m.Update(second)
	m, _ = m.Update(first)
	assert.Same(t, newer, m.Summary())
	assert.False(t, m.Loading())
}

func TestFailedLoadKeepsPreviousSummary(t *testing.T) {
	previous := sampleSummary("3")
	fetcher := &fakeFetcher{
		summaries: []*types.DashboardSummary{previous, nil},
		errs:      []error{nil, errors.New("status 500")},
	}
	m := newTestModel(fetcher)
	m, _ = m.Update(load(t, m.SetRefreshToken(0)))
	m, _ = m.Update(load(t, m.SetRefreshToken(1)))

	assert.Same(t, previous, m.Summary())
	assert.False(t, m.Loading())
}

func TestLoadAfterCloseIsDropped(t *testing.T) {
	fetcher := &fakeFetcher{summaries: []*types.DashboardSummary{sampleSummary("1")}}
	m := newTestModel(fetcher)
	cmd := m.SetRefreshToken(0)
	m.Close()
	m, _ = m.Update(load(t, cmd))
	assert.Nil(t, m.Summary())
}

func TestViewBeforeFirstLoad(t *testing.T) {
	m := newTestModel(&fakeFetcher{summaries: []*types.DashboardSummary{nil}})
	view := m.View()
	assert.Contains(t, view, "TODAY'S SPEND")
	assert.Contains(t, view, "$0.00")
	assert.Contains(t, view, emptyChart)
	assert.Contains(t, view, emptyFeed)
	assert.NotContains(t, view, refreshing)

	m.SetRefreshToken(0)
	assert.Contains(t, m.View(), refreshing)
}

func TestViewRendersSummary(t *testing.T) {
	fetcher := &fakeFetcher{summaries: []*types.DashboardSummary{sampleSummary("74.5")}}
	m := newTestModel(fetcher)
	m, _ = m.Update(load(t, m.SetRefreshToken(0)))

	view := m.View()
	assert.Contains(t, view, "$74.50")
	assert.Contains(t, view, "$120.50")
	assert.Contains(t, view, "Blue Bottle")
	assert.Contains(t, view, "$4.50")
	assert.Contains(t, view, "Coffee · 2024-05-02")
	assert.Contains(t, view, "Uncategorized · 2024-05-01")
	assert.Contains(t, view, "2 at 2 merchants")
	assert.Contains(t, view, "2024-05-01")
}

func TestPlotSinglePoint(t *testing.T) {
	s := sampleSummary("1")
	s.RecentExpenses = s.RecentExpenses[:1]
	fetcher := &fakeFetcher{summaries: []*types.DashboardSummary{s}}
	m := newTestModel(fetcher)
	m, _ = m.Update(load(t, m.SetRefreshToken(0)))
	assert.Contains(t, m.View(), "2024-05-02")
}

func TestViewFitsPaneAfterLoad(t *testing.T) {
	const height = 30
	fetcher := &fakeFetcher{summaries: []*types.DashboardSummary{sampleSummary("74.5")}}
	m := New(context.Background(), fetcher, 8)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: height})
	assert.LessOrEqual(t, lipgloss.Height(m.View()), height)

	cmd := m.SetRefreshToken(0)
	assert.LessOrEqual(t, lipgloss.Height(m.View()), height)

	m, _ = m.Update(load(t, cmd))
	require.NotNil(t, m.Summary())
	assert.LessOrEqual(t, lipgloss.Height(m.View()), height)
	assert.Contains(t, m.View(), "Blue Bottle")
}

func TestKeysOnlyScrollWhenFocused(t *testing.T) {
	m := newTestModel(&fakeFetcher{summaries: []*types.DashboardSummary{nil}})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	m.Focus()
	assert.True(t, m.Focused())
}
