package domain

type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is a single message in a conversation. Transcripts are ordered
// chronologically and treated as immutable; the assistant guard produces a
// new terminal turn rather than mutating the incoming sequence.
type ChatTurn struct {
	Role    ChatRole
	Content string
}
