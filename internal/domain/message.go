package domain

// Role identifies the author of a chat message.
type Role string

// Chat message roles understood by chat-completion providers.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of a chat-completion conversation.
// Order within a conversation is semantically meaningful: the system
// instruction comes first, followed by user/assistant turns.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewSystemMessage returns a system-role message with the given content.
func NewSystemMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// NewUserMessage returns a user-role message with the given content.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}
