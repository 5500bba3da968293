package chatpanel

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/malonaz/spendchat/cli/tui/styles"
	"github.com/malonaz/spendchat/internal/debug"
	"github.com/malonaz/spendchat/internal/history"
	"github.com/malonaz/spendchat/internal/markdown"
	"github.com/malonaz/spendchat/internal/thread"
	"github.com/malonaz/spendchat/internal/types"
)

const (
	title    = "Expense Assistant"
	subtitle = "Chat naturally, I'll handle the categories, dates, and reports."
	pending  = "Thinking about how to record that…"

	placeholder = `e.g. "I spent 70 dollars at Walmart and 20 on Apple subscriptions yesterday"`
)

// Sender delivers a chat message to the expense service.
type Sender interface {
	SendChatMessage(ctx context.Context, message string) (*types.ChatResponse, error)
}

// Model is the chat pane: the message thread, an input box and the pending indicator.
type Model struct {
	ctx    context.Context
	sender Sender
	log    *slog.Logger

	thread *thread.Thread

	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer

	width   int
	height  int
	ready   bool
	focused bool

	// Input history
	history           *history.History
	historyNavigating bool
}

// New creates a chat pane sending through sender.
func New(ctx context.Context, sender Sender, t *thread.Thread, h *history.History) (*Model, error) {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(styles.DefaultTextareaWidth)
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	renderer, err := markdown.NewRenderer(styles.DefaultTextareaWidth)
	if err != nil {
		return nil, err
	}

	return &Model{
		ctx:      ctx,
		sender:   sender,
		log:      debug.GetLogger(),
		thread:   t,
		textarea: ta,
		spinner:  sp,
		renderer: renderer,
		history:  h,
		focused:  true,
	}, nil
}

// Init starts the cursor blink and spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Thread returns the underlying message thread.
func (m *Model) Thread() *thread.Thread {
	return m.thread
}

// Focus gives keyboard input to the text area.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	m.textarea.Focus()
	return textarea.Blink
}

// Blur removes keyboard input from the text area.
func (m *Model) Blur() {
	m.focused = false
	m.textarea.Blur()
}

// Focused returns true if the pane has keyboard focus.
func (m *Model) Focused() bool {
	return m.focused
}
