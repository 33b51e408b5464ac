package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/rebuildhelper/internal/screen"
)

var screenTitles = map[screen.Screen]string{
	screen.Home:         "재건축 도우미",
	screen.Chat:         "AI 재건축 상담",
	screen.AiconGuide:   "AICON 사용법",
	screen.Consultation: "상담 신청",
	screen.MyPage:       "마이페이지",
}

// contentWidth is the phone-sized column the app draws in.
func (a *App) contentWidth() int {
	w := a.cfg.UI.Width
	if w <= 0 {
		w = 48
	}
	if a.width > 0 && a.width < w {
		w = a.width
	}
	return max(1, w)
}

func (a *App) View() string {
	if a.quitting {
		return "안녕히 가세요\n"
	}
	width := a.contentWidth()
	header := a.renderHeader(width)
	status := a.renderStatusBar(width)
	footer := a.renderFooter(width)

	bodyHeight := 0
	if a.height > 0 {
		bodyHeight = max(0, a.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	}

	var body string
	switch a.nav.Current() {
	case screen.Chat:
		body = a.renderChat(width, bodyHeight)
	case screen.AiconGuide:
		body = a.renderGuide(width)
	case screen.Consultation:
		body = a.renderConsult(width)
	case screen.MyPage:
		body = a.renderMyPage(width)
	default:
		body = a.renderHome(width)
	}
	body = clipWidth(body, width)
	if a.height > 0 {
		body = fitHeight(body, bodyHeight)
	}
	view := strings.Join([]string{header, body, status, footer}, "\n")
	return appStyle.MaxWidth(width).Render(view)
}

func (a *App) renderHeader(width int) string {
	title := screenTitles[a.nav.Current()]
	left := "← "
	right := ""
	if a.nav.Current() == screen.Home {
		left = ""
		right = "[m] 마이페이지"
	}
	line := left + title
	gap := max(1, width-ansi.StringWidth(line)-ansi.StringWidth(right))
	return renderBar(headerBarStyle, width, line+strings.Repeat(" ", gap)+right)
}

func (a *App) renderStatusBar(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "준비됨"
	}
	if a.statusErr {
		return renderBar(statusErrBarStyle, width, msg)
	}
	return renderBar(statusBarStyle, width, msg)
}

// renderFooter lists the shortcuts of the active scope, one per action.
func (a *App) renderFooter(width int) string {
	bindings := a.keys.bindingsForScope(a.scope())
	seen := make(map[string]bool, len(bindings))
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, keyStyle.Render(h.Key)+helpDescStyle.Render(" "+h.Desc))
	}
	return renderBar(footerStyle, width, strings.Join(parts, helpDescStyle.Render("  ")))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

// clipWidth truncates every line to width display cells. Hangul takes two
// cells per rune, so byte or rune counts are not enough.
func clipWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if ansi.StringWidth(l) > width {
			lines[i] = ansi.Truncate(l, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
