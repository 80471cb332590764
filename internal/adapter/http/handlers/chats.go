package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rhive/internal/adapter/http/dto"
	"rhive/internal/adapter/http/mapper"
	"rhive/internal/adapter/http/middleware"
	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
	"rhive/pkg/apierrors"
)

type ChatHandler struct {
	chatService ports.ChatService
}

func NewChatHandler(chatService ports.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	lang := middleware.GetLang(c)

	sessions, err := h.chatService.ListSessions(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list chat sessions", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToChatSessionItems(sessions))
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	lang := middleware.GetLang(c)
	sessionID := c.Param("id")
	current := middleware.CurrentUser(c)

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmptyMessage, lang),
		)
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), sessionID, current.ID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyMessage):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmptyMessage, lang),
			)
		case errors.Is(err, domain.ErrSessionNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgChatNotFound, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		default:
			zap.L().Error("failed to send message", zap.String("session_id", sessionID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToMessageItem(message))
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	lang := middleware.GetLang(c)
	sessionID := c.Param("id")

	if err := h.chatService.MarkRead(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgChatNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to mark session read", zap.String("session_id", sessionID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCommit, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
