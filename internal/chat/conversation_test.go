package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedClock() func() time.Time {
	ts := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestNewConversationStartsWithGreeting(t *testing.T) {
	c := NewConversation(WithClock(fixedClock()))
	require.Equal(t, 1, c.Len())
	first := c.Messages()[0]
	require.Equal(t, 1, first.ID)
	require.Equal(t, SenderAssistant, first.Sender)
	require.Equal(t, Greeting, first.Text)
}

func TestSendAppendsExactlyTwo(t *testing.T) {
	c := NewConversation(WithClock(fixedClock()))
	inputs := []string{"접도율이 뭐예요?", "a", "  padded  ", "용적률 계산 방법을 알려주세요"}
	for _, in := range inputs {
		before := c.Len()
		reply, ok := c.Send(in)
		require.True(t, ok)
		require.Equal(t, before+2, c.Len())

		msgs := c.Messages()
		user := msgs[len(msgs)-2]
		require.Equal(t, SenderUser, user.Sender)
		require.Equal(t, in, user.Text)
		require.Equal(t, SenderAssistant, reply.Sender)
		require.Equal(t, user.ID+1, reply.ID)
		require.Equal(t, reply, c.Last())
	}
}

func TestSendBlankIsNoop(t *testing.T) {
	c := NewConversation()
	for _, in := range []string{"", "   ", "\t\n"} {
		_, ok := c.Send(in)
		require.False(t, ok)
		require.Equal(t, 1, c.Len())
	}
}

func TestTemplateReplyIsDeterministic(t *testing.T) {
	a := NewConversation()
	b := NewConversation()
	ra, _ := a.Send("재건축 추진위원회 구성 방법은?")
	rb, _ := b.Send("재건축 추진위원회 구성 방법은?")
	again, _ := a.Send("재건축 추진위원회 구성 방법은?")

	require.Equal(t, ra.Text, rb.Text)
	require.Equal(t, ra.Text, again.Text)
	require.True(t, strings.HasPrefix(ra.Text, `"재건축 추진위원회 구성 방법은?"에 대해`))
}

func TestTemplateReplyIgnoresTopic(t *testing.T) {
	r1 := TemplateReplier{}.Reply("용적률")
	r2 := TemplateReplier{}.Reply("조합설립")
	require.Equal(t, r1.Summary, r2.Summary)
	require.Equal(t, []string{"관련 법령 보기", "유사 판례 검색"}, r1.Links)
	require.Equal(t, r1.Links, r2.Links)
	require.Contains(t, r2.Text, "접도율")
}

func TestQuickFillDoesNotSend(t *testing.T) {
	c := NewConversation()
	q := ExampleQuestions()[1]
	c.QuickFill(q)
	require.Equal(t, q, c.Input())
	require.Equal(t, 1, c.Len())

	_, ok := c.SendInput()
	require.True(t, ok)
	require.Equal(t, 3, c.Len())
	require.Empty(t, c.Input())
}

type echoReplier struct{}

func (echoReplier) Reply(in string) Reply { return Reply{Text: "echo: " + in} }

func TestWithReplierSwapsBackend(t *testing.T) {
	c := NewConversation(WithReplier(echoReplier{}))
	reply, ok := c.Send("hi")
	require.True(t, ok)
	require.Equal(t, "echo: hi", reply.Text)
	require.Empty(t, reply.Links)
}

func TestMessagesReturnsCopy(t *testing.T) {
	c := NewConversation()
	c.Send("x")
	msgs := c.Messages()
	msgs[0].Text = "changed"
	require.Equal(t, Greeting, c.Messages()[0].Text)
}
