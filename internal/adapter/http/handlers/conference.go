package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"rhive/internal/adapter/http/dto"
	"rhive/internal/adapter/http/middleware"
	"rhive/internal/adapter/transcribe"
	"rhive/internal/core/ports"
	"rhive/pkg/apierrors"
)

// ConferenceHandler bridges the browser's audio websocket to the
// transcription stream. Audio chunks flow client -> service, transcript
// events flow service -> client.
type ConferenceHandler struct {
	transcriber ports.Transcriber
	upgrader    websocket.Upgrader
}

func NewConferenceHandler(transcriber ports.Transcriber) *ConferenceHandler {
	return &ConferenceHandler{
		transcriber: transcriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *ConferenceHandler) Transcribe(c *gin.Context) {
	lang := middleware.GetLang(c)

	stream, err := h.transcriber.Start(c.Request.Context())
	if err != nil {
		if !errors.Is(err, transcribe.ErrNotConfigured) {
			zap.L().Error("failed to start transcription stream", zap.Error(err))
		}
		c.JSON(
			http.StatusServiceUnavailable,
			apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgTranscribeDown, lang),
		)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		_ = stream.Close()
		return
	}
	defer func() {
		_ = stream.Close()
		_ = conn.Close()
	}()

	go func() {
		for event := range stream.Events() {
			item := dto.TranscriptEventItem{Text: event.Text, Final: event.Final}
			if err := conn.WriteJSON(item); err != nil {
				return
			}
		}
		// Service closed its side; tell the client we are done.
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Debug("conference client disconnected", zap.Error(err))
			}
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		if err := stream.Send(data); err != nil {
			zap.L().Warn("failed to forward audio chunk", zap.Error(err))
			return
		}
	}
}
