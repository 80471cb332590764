package mapper

import (
	"time"

	"rhive/internal/adapter/http/dto"
	"rhive/internal/core/domain"
)

func ToChatSessionItems(chats []domain.ChatSession) []dto.ChatSessionItem {
	items := make([]dto.ChatSessionItem, 0, len(chats))
	for _, session := range chats {
		items = append(items, ToChatSessionItem(session))
	}
	return items
}

func ToChatSessionItem(session domain.ChatSession) dto.ChatSessionItem {
	messages := make([]dto.MessageItem, 0, len(session.Messages))
	for _, message := range session.Messages {
		messages = append(messages, ToMessageItem(message))
	}

	participants := make([]string, 0, len(session.ParticipantIDs))
	participants = append(participants, session.ParticipantIDs...)

	return dto.ChatSessionItem{
		ID:           session.ID,
		Name:         session.Name,
		Type:         string(session.Type),
		Participants: participants,
		Unread:       session.Unread,
		Messages:     messages,
	}
}

func ToMessageItem(message domain.ChatMessage) dto.MessageItem {
	return dto.MessageItem{
		ID:         message.ID,
		SenderID:   message.SenderID,
		SenderName: message.SenderName,
		Text:       message.Text,
		Timestamp:  message.Timestamp.Format(time.RFC3339),
	}
}
