package main

import (
	"rhive/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "rhive/internal/adapter/http"
	"rhive/internal/adapter/http/handlers"
	httpmiddleware "rhive/internal/adapter/http/middleware"
	"rhive/internal/adapter/store"
	"rhive/internal/adapter/transcribe"
	"rhive/internal/app/service"
	"rhive/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		logger.Fatal("failed to open collection store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("failed to close collection store", zap.Error(err))
		}
	}()

	authService := service.NewAuthService(st)
	userService := service.NewUserService(st)
	projectService := service.NewProjectService(st)
	chatService := service.NewChatService(st)

	sessions := httpmiddleware.NewSessionManager(cfg.SessionTTL)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(st),
		Auth:       handlers.NewAuthHandler(authService, sessions),
		Users:      handlers.NewUserHandler(userService),
		Projects:   handlers.NewProjectHandler(projectService),
		Chats:      handlers.NewChatHandler(chatService),
		Conference: handlers.NewConferenceHandler(transcribe.NewGateway(cfg.TranscribeURL)),
	}, sessions, userService)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
