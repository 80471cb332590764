package http

import (
	"github.com/gin-gonic/gin"

	"rhive/internal/adapter/http/handlers"
	"rhive/internal/adapter/http/middleware"
	"rhive/internal/core/ports"
)

// Handlers groups everything RegisterRoutes wires onto the engine.
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Projects   *handlers.ProjectHandler
	Chats      *handlers.ChatHandler
	Conference *handlers.ConferenceHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, sessions *middleware.SessionManager, users ports.UserService) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/auth/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(sessions, users))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.POST("/auth/password", h.Auth.ChangePassword)

		authed.GET("/users", h.Users.ListUsers)
		authed.PUT("/profile/avatar", h.Users.UpdateAvatar)

		authed.GET("/projects", h.Projects.ListProjects)
		authed.GET("/projects/:id", h.Projects.GetProject)
		authed.POST("/projects", h.Projects.CreateProject)
		authed.PUT("/projects/:id/status", h.Projects.UpdateProjectStatus)
		authed.POST("/projects/:id/tasks", h.Projects.CreateTask)
		authed.PUT("/projects/:id/tasks/:taskId/status", h.Projects.UpdateTaskStatus)

		authed.GET("/chats", h.Chats.ListSessions)
		authed.POST("/chats/:id/messages", h.Chats.SendMessage)
		authed.POST("/chats/:id/read", h.Chats.MarkRead)

		authed.GET("/conference/transcribe", h.Conference.Transcribe)
	}

	admin := authed.Group("")
	admin.Use(middleware.AdminRequired())
	{
		admin.POST("/users", h.Users.CreateUser)
		admin.DELETE("/users/:id", h.Users.RemoveUser)
		admin.POST("/users/:id/password-reset", h.Users.ResetPassword)
	}
}
