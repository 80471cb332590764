package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
)

type ChatService struct {
	store ports.CollectionStore
}

func NewChatService(store ports.CollectionStore) *ChatService {
	return &ChatService{store: store}
}

func (s *ChatService) ListSessions(ctx context.Context) ([]domain.ChatSession, error) {
	return s.store.Chats(), nil
}

func (s *ChatService) SendMessage(ctx context.Context, sessionID, senderID, text string) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, domain.ErrEmptyMessage
	}

	var sender *domain.User
	for _, user := range s.store.Users() {
		if user.ID == senderID {
			u := user
			sender = &u
			break
		}
	}
	if sender == nil {
		return domain.ChatMessage{}, domain.ErrUserNotFound
	}

	chats := s.store.Chats()
	for i := range chats {
		if chats[i].ID != sessionID {
			continue
		}
		// Sender name is frozen at send time; later renames do not rewrite
		// chat history.
		message := domain.ChatMessage{
			ID:         uuid.NewString(),
			SenderID:   sender.ID,
			SenderName: sender.Name,
			Text:       text,
			Timestamp:  time.Now().UTC(),
		}
		chats[i].Messages = append(chats[i].Messages, message)
		if err := s.store.CommitChats(ctx, chats); err != nil {
			return domain.ChatMessage{}, err
		}
		return message, nil
	}

	return domain.ChatMessage{}, domain.ErrSessionNotFound
}

func (s *ChatService) MarkRead(ctx context.Context, sessionID string) error {
	chats := s.store.Chats()
	for i := range chats {
		if chats[i].ID != sessionID {
			continue
		}
		if chats[i].Unread == 0 {
			return nil
		}
		chats[i].Unread = 0
		return s.store.CommitChats(ctx, chats)
	}
	return domain.ErrSessionNotFound
}

var _ ports.ChatService = (*ChatService)(nil)
