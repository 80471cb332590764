package ports

import (
	"context"

	"rhive/internal/core/domain"
)

// CollectionStore owns the three top-level collections. Reads return
// snapshots; commits replace a whole collection and persist it synchronously.
// Each collection commits independently, there is no cross-collection
// transaction and no optimistic-concurrency check: last writer wins.
type CollectionStore interface {
	Users() []domain.User
	Projects() []domain.Project
	Chats() []domain.ChatSession

	CommitUsers(ctx context.Context, users []domain.User) error
	CommitProjects(ctx context.Context, projects []domain.Project) error
	CommitChats(ctx context.Context, chats []domain.ChatSession) error
}
