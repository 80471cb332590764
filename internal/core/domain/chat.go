package domain

import "time"

type ChatType string

const (
	ChatTypeDirect ChatType = "direct"
	ChatTypeGroup  ChatType = "group"
)

// ChatMessage is immutable once created. SenderName is denormalized at send
// time and is not kept in sync with later renames of the sender.
type ChatMessage struct {
	ID         string
	SenderID   string
	SenderName string
	Text       string
	Timestamp  time.Time
}

// ChatSession messages are append-only. Unread is maintained by the
// presentation layer; the core only stores and resets it.
type ChatSession struct {
	ID             string
	Name           string
	Type           ChatType
	ParticipantIDs []string
	Unread         int
	Messages       []ChatMessage
}
