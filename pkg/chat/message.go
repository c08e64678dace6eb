package chat

import "time"

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in the conversation log. Messages are created by
// the Session and never modified afterwards.
type Message struct {
	ID        int
	Role      Role
	Text      string
	CreatedAt time.Time
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}
