package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
)

// Durable storage keys, one JSON blob per collection.
const (
	keyUsers    = "users"
	keyProjects = "projects"
	keyChats    = "chats"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

const upsertQuery = `
INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at;`

// Store owns the three collections and their durable snapshots in a local
// sqlite file. Commits replace a whole collection and write it through
// synchronously; each collection commits independently, so there is no
// cross-collection transaction and concurrent processes on the same file
// clobber each other last-writer-wins. That matches the single active
// session this system assumes.
type Store struct {
	db *sqlx.DB

	mu       sync.RWMutex
	users    []domain.User
	projects []domain.Project
	chats    []domain.ChatSession
}

func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// modernc sqlite wants a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// load adopts the saved snapshot of each collection, or synthesizes the
// canonical seed and persists it immediately when none exists.
func (s *Store) load() error {
	ctx := context.Background()

	raw, ok, err := s.loadBlob(keyUsers)
	if err != nil {
		return err
	}
	if ok {
		var records []userRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("decode users collection: %w", err)
		}
		s.users = decodeUsers(records)
	} else {
		s.users = seedUsers()
		if err := s.save(ctx, keyUsers, encodeUsers(s.users)); err != nil {
			return err
		}
	}

	// Guard: a corrupted or partial snapshot must never leave the store
	// without its admin record.
	if !hasAdmin(s.users) {
		zap.L().Warn("users collection has no admin record, re-inserting seed admin")
		s.users = append([]domain.User{seedAdmin()}, s.users...)
		if err := s.save(ctx, keyUsers, encodeUsers(s.users)); err != nil {
			return err
		}
	}

	raw, ok, err = s.loadBlob(keyProjects)
	if err != nil {
		return err
	}
	if ok {
		var records []projectRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("decode projects collection: %w", err)
		}
		s.projects = decodeProjects(records)
	} else {
		s.projects = seedProjects(s.users)
		if err := s.save(ctx, keyProjects, encodeProjects(s.projects)); err != nil {
			return err
		}
	}

	raw, ok, err = s.loadBlob(keyChats)
	if err != nil {
		return err
	}
	if ok {
		var records []sessionRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("decode chats collection: %w", err)
		}
		s.chats = decodeSessions(records)
	} else {
		s.chats = seedChats(s.users)
		if err := s.save(ctx, keyChats, encodeSessions(s.chats)); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) loadBlob(name string) ([]byte, bool, error) {
	var data string
	err := s.db.Get(&data, "SELECT data FROM collections WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(data), true, nil
}

func (s *Store) save(ctx context.Context, name string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx, upsertQuery, name, string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUsers(s.users)
}

func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects)
}

func (s *Store) Chats() []domain.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneChats(s.chats)
}

func (s *Store) CommitUsers(ctx context.Context, users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, keyUsers, encodeUsers(users)); err != nil {
		return err
	}
	s.users = cloneUsers(users)
	return nil
}

func (s *Store) CommitProjects(ctx context.Context, projects []domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, keyProjects, encodeProjects(projects)); err != nil {
		return err
	}
	s.projects = cloneProjects(projects)
	return nil
}

func (s *Store) CommitChats(ctx context.Context, chats []domain.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, keyChats, encodeSessions(chats)); err != nil {
		return err
	}
	s.chats = cloneChats(chats)
	return nil
}

func hasAdmin(users []domain.User) bool {
	for _, user := range users {
		if user.Role == domain.RoleAdmin {
			return true
		}
	}
	return false
}

func cloneUsers(users []domain.User) []domain.User {
	next := make([]domain.User, len(users))
	copy(next, users)
	return next
}

func cloneProjects(projects []domain.Project) []domain.Project {
	next := make([]domain.Project, len(projects))
	copy(next, projects)
	for i := range next {
		tasks := make([]domain.Task, len(next[i].Tasks))
		copy(tasks, next[i].Tasks)
		next[i].Tasks = tasks
	}
	return next
}

func cloneChats(chats []domain.ChatSession) []domain.ChatSession {
	next := make([]domain.ChatSession, len(chats))
	copy(next, chats)
	for i := range next {
		participants := make([]string, len(next[i].ParticipantIDs))
		copy(participants, next[i].ParticipantIDs)
		next[i].ParticipantIDs = participants

		messages := make([]domain.ChatMessage, len(next[i].Messages))
		copy(messages, next[i].Messages)
		next[i].Messages = messages
	}
	return next
}

var _ ports.CollectionStore = (*Store)(nil)
