// Package tui renders the assistant's screens in the terminal and routes
// key presses to the screen models.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/rebuildhelper/internal/chat"
	"github.com/jask/rebuildhelper/internal/config"
	"github.com/jask/rebuildhelper/internal/consult"
	"github.com/jask/rebuildhelper/internal/guide"
	"github.com/jask/rebuildhelper/internal/profile"
	"github.com/jask/rebuildhelper/internal/screen"
)

// Models are the per-screen state holders the App drives.
type Models struct {
	Chat    *chat.Conversation
	Guide   *guide.Guide
	Form    *consult.Form
	Profile *profile.View
}

// App ties together views.
type App struct {
	cfg    config.Config
	log    *zap.Logger
	nav    screen.Navigator
	models Models
	keys   *keyRegistry
	tz     *time.Location

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool

	homeCursor int

	chatInput  textinput.Model
	exampleIdx int

	guideSearch  textinput.Model
	guideCursor  int
	detailCursor int

	formRow     formRow
	formInputs  map[consult.Field]textinput.Model
	formMessage textarea.Model
	categoryIdx int
	slotIdx     int
	doneCursor  int

	myCursor int
}

func New(cfg config.Config, log *zap.Logger, shell *screen.Shell, models Models, tz *time.Location) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if tz == nil {
		tz = time.Local
	}
	a := &App{
		cfg:         cfg,
		log:         log,
		nav:         shell,
		models:      models,
		keys:        newKeyRegistry(defaultKeyBindings()),
		tz:          tz,
		categoryIdx: -1,
		slotIdx:     -1,
	}
	a.chatInput = newInput("", "궁금한 점을 자유롭게 질문해주세요...")
	a.guideSearch = newInput("검색 ", "기능을 검색해보세요...")
	a.resetFormInputs()
	shell.OnChange(a.screenChanged)
	a.enter(shell.Current())
	return a
}

func newInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	return in
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) screenChanged(from, to screen.Screen) {
	a.log.Debug("screen changed", zap.Stringer("from", from), zap.Stringer("to", to))
	a.status = ""
	a.statusErr = false
	a.enter(to)
}

// enter moves keyboard focus to the input that belongs to s.
func (a *App) enter(s screen.Screen) {
	a.chatInput.Blur()
	a.guideSearch.Blur()
	a.blurForm()
	switch s {
	case screen.Chat:
		a.chatInput.SetValue(a.models.Chat.Input())
		a.chatInput.CursorEnd()
		a.chatInput.Focus()
	case screen.AiconGuide:
		a.guideSearch.Focus()
	case screen.Consultation:
		a.focusFormRow()
	}
}

func (a *App) navigate(s screen.Screen) {
	a.nav.NavigateTo(s)
}

// Current is the active screen.
func (a *App) Current() screen.Screen { return a.nav.Current() }

func (a *App) scope() string {
	switch a.nav.Current() {
	case screen.Chat:
		return scopeChat
	case screen.AiconGuide:
		if _, ok := a.models.Guide.Selected(); ok {
			return scopeGuideDetail
		}
		return scopeGuideList
	case screen.Consultation:
		if a.models.Form.Submitted() {
			return scopeConsultDone
		}
		return scopeConsultForm
	case screen.MyPage:
		return scopeMyPage
	default:
		return scopeHome
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.formMessage.SetWidth(max(10, a.contentWidth()-4))
		return a, nil
	case tea.KeyMsg:
		if a.keys.isAction(m, "quit", a.scope()) {
			a.quitting = true
			return a, tea.Quit
		}
		switch a.nav.Current() {
		case screen.Chat:
			return a, a.handleChatKey(m)
		case screen.AiconGuide:
			return a, a.handleGuideKey(m)
		case screen.Consultation:
			return a, a.handleConsultKey(m)
		case screen.MyPage:
			return a, a.handleMyPageKey(m)
		default:
			return a, a.handleHomeKey(m)
		}
	}
	return a, a.updateFocused(msg)
}

// updateFocused forwards non-key messages (cursor blink) to the focused input.
func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.nav.Current() {
	case screen.Chat:
		a.chatInput, cmd = a.chatInput.Update(msg)
	case screen.AiconGuide:
		a.guideSearch, cmd = a.guideSearch.Update(msg)
	}
	return cmd
}
