// Package message defines the Message type used in LLM conversations.
package message

import (
	"strings"

	"github.com/germanamz/togetherchat/pkg/chats/content"
	"github.com/germanamz/togetherchat/pkg/chats/role"
)

// Message represents a single message in a conversation.
// It is a value type that copies cheaply.
type Message struct {
	Sender string
	Role   role.Role
	Parts  []content.Part
}

// New creates a message with the given sender, role, and content parts.
func New(sender string, r role.Role, parts ...content.Part) Message {
	return Message{
		Sender: sender,
		Role:   r,
		Parts:  parts,
	}
}

// NewText creates a message with a single Text content part.
func NewText(sender string, r role.Role, text string) Message {
	return New(sender, r, content.Text{Text: text})
}

// TextContent concatenates the text of all Text parts in the message.
func (m Message) TextContent() string {
	var b strings.Builder
	for _, p := range m.Parts {
		if t, ok := p.(content.Text); ok {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
