package transcribe

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"rhive/internal/core/ports"
)

// ErrNotConfigured is returned when no transcription endpoint is set.
var ErrNotConfigured = errors.New("transcription service not configured")

// Gateway relays audio to the external live-transcription service over a
// websocket and turns its result frames into transcript events. It is the
// only component that knows about the service; everything else sees
// ports.Transcriber.
type Gateway struct {
	url    string
	dialer *websocket.Dialer
}

func NewGateway(url string) *Gateway {
	return &Gateway{url: url, dialer: websocket.DefaultDialer}
}

func (g *Gateway) Start(ctx context.Context) (ports.TranscriptStream, error) {
	if g.url == "" {
		return nil, ErrNotConfigured
	}

	conn, _, err := g.dialer.DialContext(ctx, g.url, nil)
	if err != nil {
		return nil, err
	}

	s := &stream{
		conn:   conn,
		events: make(chan ports.TranscriptEvent, 16),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

type stream struct {
	conn   *websocket.Conn
	events chan ports.TranscriptEvent
	done   chan struct{}

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// transcriptFrame is the service's wire shape for one recognition result.
type transcriptFrame struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}

func (s *stream) readLoop() {
	defer close(s.events)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Debug("transcription stream ended", zap.Error(err))
			}
			return
		}

		var frame transcriptFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			zap.L().Warn("malformed transcript frame", zap.Error(err))
			continue
		}
		// The send must not outlive Close: an abandoned stream with a full
		// buffer would pin this goroutine forever.
		select {
		case s.events <- ports.TranscriptEvent{Text: frame.Text, Final: frame.Final}:
		case <-s.done:
			return
		}
	}
}

func (s *stream) Send(chunk []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.BinaryMessage, chunk)
}

func (s *stream) Events() <-chan ports.TranscriptEvent {
	return s.events
}

func (s *stream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.writeMu.Lock()
		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.writeMu.Unlock()
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

var _ ports.Transcriber = (*Gateway)(nil)
