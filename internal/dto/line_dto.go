package dto

// LineWebhookRequest is the envelope LINE posts to the webhook
// endpoint. One request can batch several events.
type LineWebhookRequest struct {
	Destination string      `json:"destination"`
	Events      []LineEvent `json:"events"`
}

type LineEvent struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Source     LineSource   `json:"source"`
	Message    *LineMessage `json:"message,omitempty"`
	Timestamp  int64        `json:"timestamp"`
}

type LineSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type LineMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// IsTextMessage reports whether the event is a user text message the
// bot should handle.
func (e LineEvent) IsTextMessage() bool {
	return e.Type == "message" && e.Message != nil && e.Message.Type == "text"
}
