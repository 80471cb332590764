package tests

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"rhive/internal/adapter/http/middleware"
	"rhive/internal/core/domain"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) ChangePassword(ctx context.Context, userID, newPassword, confirmation string) (domain.User, error) {
	args := m.Called(ctx, userID, newPassword, confirmation)
	return args.Get(0).(domain.User), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) AddUser(ctx context.Context, input domain.AddUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) RemoveUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *userServiceMock) ResetPassword(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *userServiceMock) UpdateAvatar(ctx context.Context, userID, avatar string) (domain.User, error) {
	args := m.Called(ctx, userID, avatar)
	return args.Get(0).(domain.User), args.Error(1)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, id string) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) (domain.Project, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) CreateTask(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Project, error) {
	args := m.Called(ctx, projectID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) UpdateTaskStatus(ctx context.Context, projectID, taskID string, status domain.TaskStatus) (domain.Project, error) {
	args := m.Called(ctx, projectID, taskID, status)
	return args.Get(0).(domain.Project), args.Error(1)
}

type chatServiceMock struct {
	mock.Mock
}

func (m *chatServiceMock) ListSessions(ctx context.Context) ([]domain.ChatSession, error) {
	args := m.Called(ctx)

	var sessions []domain.ChatSession
	if value := args.Get(0); value != nil {
		sessions = value.([]domain.ChatSession)
	}
	return sessions, args.Error(1)
}

func (m *chatServiceMock) SendMessage(ctx context.Context, sessionID, senderID, text string) (domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, senderID, text)
	return args.Get(0).(domain.ChatMessage), args.Error(1)
}

func (m *chatServiceMock) MarkRead(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// authedRouter builds a router whose /api group runs the language and auth
// middleware, with a live session issued for the given user.
func authedRouter(users *userServiceMock, user domain.User) (*gin.Engine, *gin.RouterGroup, string) {
	sessions := middleware.NewSessionManager(time.Hour)
	token := sessions.Issue(user.ID)
	users.On("GetUser", mock.Anything, user.ID).Return(user, nil)

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.AuthRequired(sessions, users))
	return router, group, token
}
