package chat

import "time"

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one chat turn. Messages are never mutated after they are
// appended to a Conversation.
type Message struct {
	ID        int       `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Summary   string    `json:"summary,omitempty"`
	Links     []string  `json:"links,omitempty"`
}

func (m Message) FromUser() bool { return m.Sender == SenderUser }

// Reply is what a Replier produces for one user input.
type Reply struct {
	Text    string
	Summary string
	Links   []string
}
