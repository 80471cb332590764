package dto

type MessageItem struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"`
}

type ChatSessionItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Participants []string      `json:"participants"`
	Unread       int           `json:"unread"`
	Messages     []MessageItem `json:"messages"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// TranscriptEventItem is one transcription result relayed to the conference
// client.
type TranscriptEventItem struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}
