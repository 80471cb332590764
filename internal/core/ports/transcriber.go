package ports

import "context"

// TranscriptEvent is one recognition result from the external transcription
// service. Partial results arrive with Final false and are superseded by the
// next event for the same utterance.
type TranscriptEvent struct {
	Text  string
	Final bool
}

// TranscriptStream is one live transcription session.
type TranscriptStream interface {
	// Send streams one audio chunk to the service.
	Send(chunk []byte) error
	// Events delivers transcripts until the session ends; the channel is
	// closed when the service hangs up or Close is called.
	Events() <-chan TranscriptEvent
	Close() error
}

// Transcriber is the narrow capability boundary to the external live
// transcription service. The collection store has no dependency on it.
type Transcriber interface {
	Start(ctx context.Context) (TranscriptStream, error)
}
