// Package thread holds the state of a chat session: the ordered message list,
// the draft being typed and the in-flight guard around sends.
package thread

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/malonaz/spendchat/internal/types"
)

const (
	// WelcomeID is the id of the seeded assistant message.
	WelcomeID = "welcome"

	// Apology replaces the assistant reply when a send fails, whatever the cause.
	Apology = "Hmm, something went wrong while talking to the expense brain. Please try again in a moment."
)

// Thread is an append-only chat thread.
type Thread struct {
	messages []*types.ChatMessage
	draft    string
	inFlight bool

	now   func() time.Time
	newID func() string
}

// Option configures a Thread.
type Option func(*Thread)

// WithClock sets the clock used to timestamp messages.
func WithClock(now func() time.Time) Option {
	return func(t *Thread) { t.now = now }
}

// WithIDGenerator sets the generator of message ids.
func WithIDGenerator(newID func() string) Option {
	return func(t *Thread) { t.newID = newID }
}

// New returns a thread seeded with the welcome message.
func New(welcome string, opts ...Option) *Thread {
	t := &Thread{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.messages = append(t.messages, &types.ChatMessage{
		ID:        WelcomeID,
		Role:      types.RoleAssistant,
		Content:   welcome,
		CreatedAt: types.FormatTimestamp(t.now()),
	})
	return t
}

// SetDraft sets the text being typed.
func (t *Thread) SetDraft(draft string) {
	t.draft = draft
}

// Draft returns the text being typed.
func (t *Thread) Draft() string {
	return t.draft
}

// InFlight returns true while a send is outstanding.
func (t *Thread) InFlight() bool {
	return t.inFlight
}

// Submit records the draft as a user message and returns the text to send.
// Returns false when the draft is blank or a send is already in flight.
func (t *Thread) Submit() (string, bool) {
	text := strings.TrimSpace(t.draft)
	if text == "" || t.inFlight {
		return "", false
	}
	t.append(types.RoleUser, text)
	t.draft = ""
	t.inFlight = true
	return text, true
}

// Resolve completes the outstanding send and returns the number of expenses it created.
// Any error is turned into the apology message.
func (t *Thread) Resolve(response *types.ChatResponse, err error) int {
	if !t.inFlight {
		return 0
	}
	t.inFlight = false
	if err != nil || response == nil {
		t.append(types.RoleAssistant, Apology)
		return 0
	}
	t.append(types.RoleAssistant, response.Reply)
	return len(response.Expenses)
}

// Messages returns the messages ordered by creation timestamp.
// The sort is stable so equal timestamps keep insertion order.
func (t *Thread) Messages() []*types.ChatMessage {
	messages := make([]*types.ChatMessage, len(t.messages))
	copy(messages, t.messages)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages
}

// Len returns the number of messages.
func (t *Thread) Len() int {
	return len(t.messages)
}

// LastReply returns the most recent assistant message, nil if there is none.
func (t *Thread) LastReply() *types.ChatMessage {
	messages := t.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == types.RoleAssistant {
			return messages[i]
		}
	}
	return nil
}

func (t *Thread) append(role types.Role, content string) {
	t.messages = append(t.messages, &types.ChatMessage{
		ID:        t.newID(),
		Role:      role,
		Content:   content,
		CreatedAt: types.FormatTimestamp(t.now()),
	})
}
