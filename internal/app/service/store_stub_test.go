package service

import (
	"context"
	"testing"

	"rhive/internal/core/domain"
)

// storeStub keeps the three collections in memory and mimics the real
// store's snapshot semantics: readers get copies, commits replace the
// whole collection.
type storeStub struct {
	users    []domain.User
	projects []domain.Project
	chats    []domain.ChatSession

	commitErr     error
	userCommits   int
	projectCommit int
	chatCommits   int
}

func (s *storeStub) Users() []domain.User {
	next := make([]domain.User, len(s.users))
	copy(next, s.users)
	return next
}

func (s *storeStub) Projects() []domain.Project {
	next := make([]domain.Project, len(s.projects))
	copy(next, s.projects)
	for i := range next {
		tasks := make([]domain.Task, len(next[i].Tasks))
		copy(tasks, next[i].Tasks)
		next[i].Tasks = tasks
	}
	return next
}

func (s *storeStub) Chats() []domain.ChatSession {
	next := make([]domain.ChatSession, len(s.chats))
	copy(next, s.chats)
	for i := range next {
		messages := make([]domain.ChatMessage, len(next[i].Messages))
		copy(messages, next[i].Messages)
		next[i].Messages = messages
	}
	return next
}

func (s *storeStub) CommitUsers(_ context.Context, users []domain.User) error {
	if s.commitErr != nil {
		return s.commitErr
	}
	s.userCommits++
	s.users = users
	return nil
}

func (s *storeStub) CommitProjects(_ context.Context, projects []domain.Project) error {
	if s.commitErr != nil {
		return s.commitErr
	}
	s.projectCommit++
	s.projects = projects
	return nil
}

func (s *storeStub) CommitChats(_ context.Context, chats []domain.ChatSession) error {
	if s.commitErr != nil {
		return s.commitErr
	}
	s.chatCommits++
	s.chats = chats
	return nil
}

func testUser(t *testing.T, id, username, name string, role domain.Role) domain.User {
	t.Helper()

	user := domain.User{
		ID:       id,
		Username: username,
		Email:    username + "@rhiveconstruction.com",
		Name:     name,
		Role:     role,
	}
	if err := user.SetPassword(domain.DefaultCredential); err != nil {
		t.Fatalf("hash seed password: %v", err)
	}
	return user
}
