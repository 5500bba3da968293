package chatpanel

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/malonaz/spendchat/cli/tui/styles"
)

// SetSize lays the pane out in the given outer dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.recalculateLayout()
}

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	lineCount := strings.Count(m.textarea.Value(), "\n") + 1
	newHeight := max(styles.MinTextareaHeight, min(lineCount, styles.MaxTextareaHeight))
	if m.textarea.Height() != newHeight {
		m.textarea.SetHeight(newHeight)
		m.recalculateLayout()
	}
}

func (m *Model) headerHeight() int {
	return lipgloss.Height(m.renderHeader())
}

// footerHeight covers the input box and the pending line under it.
func (m *Model) footerHeight() int {
	return m.textarea.Height() + styles.TextAreaStyle.GetVerticalFrameSize() + 1
}

// recalculateLayout adjusts viewport and textarea dimensions based on current state.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	viewportHeight := max(m.height-m.headerHeight()-m.footerHeight(), styles.MinViewportHeight)
	rendererWidth := max(m.width-styles.MessageHorizontalFrameSize()-6, 10)
	if err := m.renderer.SetWidth(rendererWidth); err != nil {
		m.log.Warn("resizing markdown renderer", "error", err)
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, viewportHeight)
		m.ready = true
		m.refreshViewport(true)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
		m.refreshViewport(false)
	}

	m.textarea.SetWidth(m.width - styles.TextAreaStyle.GetHorizontalFrameSize())
}

// refreshViewport re-renders the thread, optionally scrolling to the newest message.
func (m *Model) refreshViewport(toBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if toBottom {
		m.viewport.GotoBottom()
	}
}
