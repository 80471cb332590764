package mapper

import (
	"rhive/internal/adapter/http/dto"
	"rhive/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

// ToUserItem never exposes the credential hash.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Name:         user.Name,
		Avatar:       user.Avatar,
		IsFirstLogin: user.IsFirstLogin,
		Role:         string(user.Role),
	}
}
