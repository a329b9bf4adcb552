package domain

const (
	ChatFromUser      = "user"
	ChatFromAssistant = "assistant"
)

// ChatMessage is one entry of the assistant chat transcript.
type ChatMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}
