package ports

import (
	"context"

	"rhive/internal/core/domain"
)

type AuthService interface {
	// Authenticate matches the username case-insensitively and the credential
	// exactly. The returned user's IsFirstLogin flag tells the caller to force
	// a credential change before granting full access.
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	ChangePassword(ctx context.Context, userID, newPassword, confirmation string) (domain.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	AddUser(ctx context.Context, input domain.AddUserInput) (domain.User, error)
	RemoveUser(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, id string) error
	UpdateAvatar(ctx context.Context, userID, avatar string) (domain.User, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) (domain.Project, error)
	CreateTask(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Project, error)
	UpdateTaskStatus(ctx context.Context, projectID, taskID string, status domain.TaskStatus) (domain.Project, error)
}

type ChatService interface {
	ListSessions(ctx context.Context) ([]domain.ChatSession, error)
	SendMessage(ctx context.Context, sessionID, senderID, text string) (domain.ChatMessage, error)
	MarkRead(ctx context.Context, sessionID string) error
}
