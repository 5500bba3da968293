package types

// ChatReplyMsg carries the outcome of a chat send.
type ChatReplyMsg struct {
	Response *ChatResponse
	Err      error
}

// ExpensesAddedMsg is emitted by the chat when a reply created expenses.
type ExpensesAddedMsg struct {
	Count int
}

// SummaryLoadedMsg carries the outcome of a dashboard load.
// Generation identifies the load that produced it.
type SummaryLoadedMsg struct {
	Generation uint64
	Summary    *DashboardSummary
	Err        error
}

// RefreshTickMsg fires on the periodic dashboard refresh interval.
type RefreshTickMsg struct{}

// ClipboardMsg reports the outcome of a clipboard write.
type ClipboardMsg struct {
	Err error
}
