package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
	// ForcePasswordChange tells the client to run the credential-change flow
	// before granting full access.
	ForcePasswordChange bool `json:"force_password_change"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
