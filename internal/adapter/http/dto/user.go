package dto

type UserItem struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	IsFirstLogin bool   `json:"is_first_login"`
	Role         string `json:"role"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,max=255"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,max=2048"`
}
