package entity

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Id        uint
	Role      ChatRole
	Message   string
	CreatedAt time.Time
}
