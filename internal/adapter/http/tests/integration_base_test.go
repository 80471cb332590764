//go:build integration
// +build integration

package tests

import (
	"net/http/httptest"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	httpadapter "rhive/internal/adapter/http"
	"rhive/internal/adapter/http/handlers"
	"rhive/internal/adapter/http/middleware"
	"rhive/internal/adapter/store"
	"rhive/internal/adapter/transcribe"
	"rhive/internal/app/service"
	"rhive/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

// IntegrationSuiteBase boots the whole stack against a throwaway sqlite
// file: real store, real services, real router. Each test gets a freshly
// seeded profile.
type IntegrationSuiteBase struct {
	suite.Suite

	Store    *store.Store
	Server   *httptest.Server
	Sessions *middleware.SessionManager

	storePath string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.storePath = filepath.Join(s.T().TempDir(), "rhive.db")

	st, err := store.Open(s.storePath)
	s.Require().NoError(err)
	s.Store = st

	authService := service.NewAuthService(st)
	userService := service.NewUserService(st)
	projectService := service.NewProjectService(st)
	chatService := service.NewChatService(st)

	s.Sessions = middleware.NewSessionManager(time.Hour)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(st),
		Auth:       handlers.NewAuthHandler(authService, s.Sessions),
		Users:      handlers.NewUserHandler(userService),
		Projects:   handlers.NewProjectHandler(projectService),
		Chats:      handlers.NewChatHandler(chatService),
		Conference: handlers.NewConferenceHandler(transcribe.NewGateway("")),
	}, s.Sessions, userService)

	s.Server = httptest.NewServer(router)
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.Server != nil {
		s.Server.Close()
	}
	if s.Store != nil {
		s.Require().NoError(s.Store.Close())
	}
}
