package service

import (
	"context"
	"strings"

	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
)

type AuthService struct {
	store ports.CollectionStore
}

func NewAuthService(store ports.CollectionStore) *AuthService {
	return &AuthService{store: store}
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)

	for _, user := range s.store.Users() {
		if !strings.EqualFold(user.Username, username) {
			continue
		}
		if !user.CheckPassword(password) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return user, nil
	}

	return domain.User{}, domain.ErrInvalidCredentials
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, newPassword, confirmation string) (domain.User, error) {
	if len(newPassword) < 6 {
		return domain.User{}, domain.ErrPasswordTooShort
	}
	// bcrypt refuses inputs over 72 bytes.
	if len(newPassword) > 72 {
		return domain.User{}, domain.ErrPasswordTooLong
	}
	if newPassword != confirmation {
		return domain.User{}, domain.ErrPasswordMismatch
	}

	users := s.store.Users()
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		if err := users[i].SetPassword(newPassword); err != nil {
			return domain.User{}, err
		}
		users[i].IsFirstLogin = false
		if err := s.store.CommitUsers(ctx, users); err != nil {
			return domain.User{}, err
		}
		return users[i], nil
	}

	return domain.User{}, domain.ErrUserNotFound
}

var _ ports.AuthService = (*AuthService)(nil)
