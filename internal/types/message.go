package types

import "time"

// TimestampLayout is fixed width so that timestamps sort lexicographically.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Role of a chat message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is a displayable message of the chat thread.
// Messages are never updated nor deleted and only live for the session.
type ChatMessage struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt string
}

// FormatTimestamp formats t as a sortable ISO-8601 UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
