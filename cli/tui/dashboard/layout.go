package dashboard

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/malonaz/spendchat/cli/tui/styles"
)

// SetSize lays the pane out in the given dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.recalculateLayout()
}

// recalculateLayout gives the feed whatever height the header, cards and chart leave.
// The chart grows once a summary with expenses is loaded, so this runs on every load too.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	used := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderCards()) +
		lipgloss.Height(m.renderChart()) + lipgloss.Height(m.renderFeedTitle())
	feedHeight := max(m.height-used, styles.MinFeedHeight)

	if !m.ready {
		m.feed = viewport.New(m.width, feedHeight)
		m.ready = true
	} else {
		m.feed.Width = m.width
		m.feed.Height = feedHeight
	}
	m.refreshFeed()
}

func (m *Model) refreshFeed() {
	if !m.ready {
		return
	}
	m.feed.SetContent(m.renderFeed())
}
