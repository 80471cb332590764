package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
)

type UserService struct {
	store ports.CollectionStore
}

func NewUserService(store ports.CollectionStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.Users(), nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	for _, user := range s.store.Users() {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *UserService) AddUser(ctx context.Context, input domain.AddUserInput) (domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if username == "" || email == "" || name == "" {
		return domain.User{}, domain.ErrInvalidUserPayload
	}

	user := domain.User{
		ID:           "u-" + uuid.NewString(),
		Username:     username,
		Email:        email,
		Name:         name,
		Avatar:       randomAvatar(),
		IsFirstLogin: true,
		Role:         domain.RoleUser,
	}
	if err := user.SetPassword(domain.DefaultCredential); err != nil {
		return domain.User{}, err
	}

	users := append(s.store.Users(), user)
	if err := s.store.CommitUsers(ctx, users); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) RemoveUser(ctx context.Context, id string) error {
	users := s.store.Users()

	next := make([]domain.User, 0, len(users))
	found := false
	for _, user := range users {
		if user.ID == id {
			if user.Role == domain.RoleAdmin {
				return domain.ErrAdminImmutable
			}
			found = true
			continue
		}
		next = append(next, user)
	}
	if !found {
		return domain.ErrUserNotFound
	}

	return s.store.CommitUsers(ctx, next)
}

func (s *UserService) ResetPassword(ctx context.Context, id string) error {
	users := s.store.Users()
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if err := users[i].SetPassword(domain.DefaultCredential); err != nil {
			return err
		}
		users[i].IsFirstLogin = true
		return s.store.CommitUsers(ctx, users)
	}
	return domain.ErrUserNotFound
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatar string) (domain.User, error) {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return domain.User{}, domain.ErrInvalidUserPayload
	}

	users := s.store.Users()
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].Avatar = avatar
		if err := s.store.CommitUsers(ctx, users); err != nil {
			return domain.User{}, err
		}
		return users[i], nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

func randomAvatar() string {
	return fmt.Sprintf("https://picsum.photos/200/200?random=%d", time.Now().UnixMilli())
}

var _ ports.UserService = (*UserService)(nil)
