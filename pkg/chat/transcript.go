package chat

import (
	"fmt"
	"strings"
)

// Transcript renders messages as plain text, one block per message.
func Transcript(messages []Message) string {
	var sb strings.Builder
	for i, msg := range messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		label := "Assistant"
		if msg.IsUser() {
			label = "You"
		}
		fmt.Fprintf(&sb, "[%d] %s: %s", msg.ID, label, msg.Text)
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}
