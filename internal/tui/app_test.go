package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/rebuildhelper/internal/chat"
	"github.com/jask/rebuildhelper/internal/config"
	"github.com/jask/rebuildhelper/internal/consult"
	"github.com/jask/rebuildhelper/internal/guide"
	"github.com/jask/rebuildhelper/internal/profile"
	"github.com/jask/rebuildhelper/internal/screen"
)

var fixedNow = time.Date(2024, 6, 15, 14, 30, 0, 123_000_000, time.UTC)

func newTestApp(t *testing.T) (*App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)
	clock := func() time.Time { return fixedNow }
	models := Models{
		Chat:    chat.NewConversation(chat.WithClock(clock)),
		Guide:   guide.New(guide.DefaultCatalog(), log),
		Form:    consult.NewForm(consult.WithClock(clock), consult.WithLogger(log)),
		Profile: profile.NewView(profile.User{Name: "홍길동"}, profile.DefaultHistory(), true),
	}
	a := New(config.Default(), log, screen.NewShell(screen.Home), models, time.UTC)
	return a, logs
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

func typeText(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestHomeNavigationAndBack(t *testing.T) {
	a, logs := newTestApp(t)
	require.Equal(t, screen.Home, a.Current())

	press(a, "down", "down", "enter")
	require.Equal(t, screen.AiconGuide, a.Current())
	press(a, "esc")
	require.Equal(t, screen.Home, a.Current())

	press(a, "m")
	require.Equal(t, screen.MyPage, a.Current())
	press(a, "esc")
	require.Equal(t, screen.Home, a.Current())

	press(a, "c")
	require.Equal(t, screen.Chat, a.Current())
	require.Equal(t, 5, logs.FilterMessage("screen changed").Len())
}

func TestHomePopularQuestionPrefillsChat(t *testing.T) {
	a, _ := newTestApp(t)
	for i := 0; i < 4; i++ {
		press(a, "down")
	}
	press(a, "enter")

	require.Equal(t, screen.Chat, a.Current())
	require.Equal(t, popularQuestions[0], a.models.Chat.Input())
	require.Equal(t, popularQuestions[0], a.chatInput.Value())
}

func TestChatSendAppendsUserAndReply(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "c")
	typeText(a, "용적률이 뭐예요?")
	press(a, "enter")

	msgs := a.models.Chat.Messages()
	require.Len(t, msgs, 3)
	require.Equal(t, chat.SenderUser, msgs[1].Sender)
	require.Equal(t, "용적률이 뭐예요?", msgs[1].Text)
	require.Equal(t, chat.SenderAssistant, msgs[2].Sender)
	require.True(t, strings.HasPrefix(msgs[2].Text, `"용적률이 뭐예요?"에 대해`))
	require.Empty(t, a.chatInput.Value())
	require.Empty(t, a.models.Chat.Input())
}

func TestChatBlankInputIsIgnored(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "c")
	typeText(a, "   ")
	press(a, "enter")

	require.Equal(t, 1, a.models.Chat.Len())
	require.Equal(t, "   ", a.chatInput.Value())
}

func TestChatQuickFillCyclesExamples(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "c")
	examples := chat.ExampleQuestions()

	press(a, "tab")
	require.Equal(t, examples[0], a.chatInput.Value())
	press(a, "tab")
	require.Equal(t, examples[1], a.models.Chat.Input())
	require.Equal(t, 1, a.models.Chat.Len())
}

func TestGuideSearchSelectAndClear(t *testing.T) {
	a, logs := newTestApp(t)
	press(a, "down", "down", "enter")
	require.Equal(t, screen.AiconGuide, a.Current())

	typeText(a, "분배")
	require.Equal(t, "분배", a.models.Guide.Query())
	visible := a.models.Guide.Visible()
	require.Len(t, visible, 1)
	require.Equal(t, "calculation", visible[0].ID)

	press(a, "enter")
	id, ok := a.models.Guide.Selected()
	require.True(t, ok)
	require.Equal(t, "calculation", id)
	require.Equal(t, scopeGuideDetail, a.scope())

	press(a, "enter")
	require.Contains(t, a.status, "튜토리얼 준비 중")
	require.Equal(t, 1, logs.FilterMessage("opening tutorial").Len())

	press(a, "esc")
	_, ok = a.models.Guide.Selected()
	require.False(t, ok)
	require.Equal(t, screen.AiconGuide, a.Current())
	require.Equal(t, "분배", a.models.Guide.Query())

	press(a, "esc")
	require.Equal(t, screen.Home, a.Current())
}

func TestGuideEmptyResultShowsMessage(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "down", "down", "enter")
	typeText(a, "zzzz")

	require.Empty(t, a.models.Guide.Visible())
	require.Contains(t, a.View(), "검색 결과가 없습니다.")
	press(a, "enter")
	_, ok := a.models.Guide.Selected()
	require.False(t, ok)
}

// openConsult goes to the form with the cursor on the name row.
func openConsult(t *testing.T, a *App) {
	t.Helper()
	press(a, "down", "down", "down", "enter")
	require.Equal(t, screen.Consultation, a.Current())
	require.Equal(t, rowName, a.formRow)
}

func TestConsultSubmitDisabledWhileIncomplete(t *testing.T) {
	a, logs := newTestApp(t)
	openConsult(t, a)
	typeText(a, "홍길동")
	press(a, "down")
	typeText(a, "010-1234-5678")

	a.formRow = rowSubmit
	a.focusFormRow()
	press(a, "enter")

	require.False(t, a.models.Form.Submitted())
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "상담 분야")
	require.Zero(t, logs.FilterMessage("consultation submitted").Len())
}

func TestConsultFullSubmitAndReset(t *testing.T) {
	a, logs := newTestApp(t)
	openConsult(t, a)

	typeText(a, "홍길동")
	press(a, "down")
	typeText(a, "010-1234-5678")
	press(a, "down", "down", "right")
	require.Equal(t, "aicon", a.models.Form.Draft().Category)

	press(a, "down", "down", "down", "down")
	require.Equal(t, rowSubmit, a.formRow)
	press(a, "enter")

	rec, ok := a.models.Form.Record()
	require.True(t, ok)
	require.Regexp(t, regexp.MustCompile(`^CONS[0-9]{8}$`), rec.ID)
	require.Equal(t, consult.NewRecordID(fixedNow), rec.ID)
	require.Equal(t, "홍길동", rec.Draft.Name)
	require.Equal(t, consult.ModeOnline, rec.Draft.Mode)
	require.Equal(t, scopeConsultDone, a.scope())
	require.Contains(t, a.View(), rec.ID)
	require.Equal(t, 1, logs.FilterMessage("consultation submitted").Len())

	// "추가 상담 신청" is the default button.
	press(a, "enter")
	require.False(t, a.models.Form.Submitted())
	require.Equal(t, consult.EmptyDraft(), a.models.Form.Draft())
	require.Empty(t, a.formInputs[consult.FieldName].Value())
	require.Equal(t, screen.Consultation, a.Current())
}

func TestConsultDoneHomeButton(t *testing.T) {
	a, _ := newTestApp(t)
	openConsult(t, a)
	for _, f := range []consult.Field{consult.FieldName, consult.FieldPhone, consult.FieldCategory} {
		_, err := a.models.Form.SetField(f, "x")
		require.NoError(t, err)
	}
	a.submitConsultation()
	require.True(t, a.models.Form.Submitted())

	press(a, "right", "enter")
	require.Equal(t, screen.Home, a.Current())
	require.True(t, a.models.Form.Submitted())
}

func TestConsultModeToggle(t *testing.T) {
	a, _ := newTestApp(t)
	openConsult(t, a)
	press(a, "up")
	require.Equal(t, rowMode, a.formRow)

	press(a, "right")
	require.Equal(t, consult.ModeOffline, a.models.Form.Draft().Mode)
	press(a, "enter")
	require.Equal(t, consult.ModeOnline, a.models.Form.Draft().Mode)
}

func TestMyPageToggleAndActions(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "m")
	require.True(t, a.models.Profile.Notifications())

	press(a, "enter")
	require.False(t, a.models.Profile.Notifications())
	press(a, "enter")
	require.True(t, a.models.Profile.Notifications())

	view := a.View()
	require.Contains(t, view, "홍길동님")
	require.Contains(t, view, "CONS12345678")

	press(a, "down", "enter")
	require.Equal(t, screen.Chat, a.Current())
	press(a, "esc", "m", "down", "enter")
	require.Equal(t, screen.Consultation, a.Current())
}

func TestQuitKeysByScope(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "c")
	typeText(a, "q")
	require.False(t, a.quitting)
	require.Equal(t, "q", a.chatInput.Value())

	cmd := press(a, "ctrl+c")
	require.True(t, a.quitting)
	require.NotNil(t, cmd)
	require.Equal(t, "안녕히 가세요\n", a.View())
}

func TestViewFitsWindow(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	for _, s := range screen.All() {
		a.navigate(s)
		view := a.View()
		lines := strings.Split(view, "\n")
		require.LessOrEqual(t, len(lines), 30, s.String())
		for _, l := range lines {
			require.LessOrEqual(t, ansi.StringWidth(l), 40, "%s: %q", s, l)
		}
	}
}

func TestFooterListsScopeActions(t *testing.T) {
	a, _ := newTestApp(t)
	footer := a.renderFooter(200)
	require.Contains(t, footer, "마이페이지")
	require.NotContains(t, footer, "보내기")

	press(a, "c")
	footer = a.renderFooter(200)
	require.Contains(t, footer, "보내기")
	require.Equal(t, 1, strings.Count(footer, "종료"))
}
