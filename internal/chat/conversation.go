// Package chat holds the mock AI conversation: an append-only list of turns
// where every user message is answered synchronously by a Replier.
package chat

import (
	"strings"
	"time"
)

// Greeting is the assistant's opening message.
const Greeting = "안녕하세요! 재건축 관련 궁금한 점을 언제든 물어보세요. 아래 예시를 참고하시거나 직접 질문해주세요."

var exampleQuestions = []string{
	"접도율이 뭐예요?",
	"AICON에서 사업수지 분석은 어디서 하나요?",
	"온·오프 상담 어떻게 신청하나요?",
}

// Topic is a quick-question badge shown under the conversation.
type Topic struct {
	Label string
	Color string
}

var quickTopics = []Topic{
	{Label: "용어 질문", Color: "blue"},
	{Label: "법률 판례", Color: "purple"},
	{Label: "AICON 기능", Color: "green"},
	{Label: "상담 신청", Color: "orange"},
}

// ExampleQuestions returns the canned questions offered for quick fill.
func ExampleQuestions() []string {
	return append([]string(nil), exampleQuestions...)
}

func QuickTopics() []Topic {
	return append([]Topic(nil), quickTopics...)
}

type Option func(*Conversation)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) { c.now = now }
}

// WithReplier swaps the reply source. The default is TemplateReplier.
func WithReplier(r Replier) Option {
	return func(c *Conversation) { c.replier = r }
}

// Conversation is not safe for concurrent use.
type Conversation struct {
	messages []Message
	input    string
	replier  Replier
	now      func() time.Time
}

func NewConversation(opts ...Option) *Conversation {
	c := &Conversation{replier: TemplateReplier{}, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.messages = append(c.messages, Message{
		ID:        1,
		Sender:    SenderAssistant,
		Text:      Greeting,
		Timestamp: c.now(),
	})
	return c
}

// Send appends the user's text and exactly one assistant reply. Blank input
// is ignored and reports ok=false. The pending input is cleared on success.
func (c *Conversation) Send(text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}
	ts := c.now()
	c.messages = append(c.messages, Message{
		ID:        len(c.messages) + 1,
		Sender:    SenderUser,
		Text:      text,
		Timestamp: ts,
	})
	r := c.replier.Reply(text)
	reply := Message{
		ID:        len(c.messages) + 1,
		Sender:    SenderAssistant,
		Text:      r.Text,
		Timestamp: ts,
		Summary:   r.Summary,
		Links:     append([]string(nil), r.Links...),
	}
	c.messages = append(c.messages, reply)
	c.input = ""
	return reply, true
}

// SendInput sends whatever is in the pending-input buffer.
func (c *Conversation) SendInput() (Message, bool) {
	return c.Send(c.input)
}

// QuickFill puts text in the input buffer without sending it.
func (c *Conversation) QuickFill(text string) {
	c.input = text
}

func (c *Conversation) SetInput(text string) { c.input = text }

func (c *Conversation) Input() string { return c.input }

// Messages returns a copy of the history, oldest first.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int { return len(c.messages) }

// Last returns the newest message.
func (c *Conversation) Last() Message {
	return c.messages[len(c.messages)-1]
}
