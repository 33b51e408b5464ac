package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key scopes. Screens use their screen name; sub-views append a suffix.
const (
	scopeHome        = "home"
	scopeChat        = "chat"
	scopeGuideList   = "aiconGuide"
	scopeGuideDetail = "aiconGuide:detail"
	scopeConsultForm = "consultation"
	scopeConsultDone = "consultation:submitted"
	scopeMyPage      = "myPage"
)

type keyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type keyRegistry struct {
	bindings []keyBinding
}

func newKeyRegistry(bindings []keyBinding) *keyRegistry {
	return &keyRegistry{bindings: slices.Clone(bindings)}
}

func (r *keyRegistry) bindingsForScope(scope string) []keyBinding {
	out := make([]keyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *keyRegistry) isAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func defaultKeyBindings() []keyBinding {
	return []keyBinding{
		{Keys: []string{"ctrl+c"}, Action: "quit", Description: "종료", Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: "quit", Description: "종료", Scopes: []string{scopeHome, scopeMyPage, scopeConsultDone, scopeGuideDetail}},
		{Keys: []string{"up", "k"}, Action: "up", Description: "위", Scopes: []string{scopeHome, scopeMyPage, scopeGuideDetail}},
		{Keys: []string{"down", "j"}, Action: "down", Description: "아래", Scopes: []string{scopeHome, scopeMyPage, scopeGuideDetail}},
		{Keys: []string{"up"}, Action: "up", Description: "위", Scopes: []string{scopeGuideList}},
		{Keys: []string{"down"}, Action: "down", Description: "아래", Scopes: []string{scopeGuideList}},
		{Keys: []string{"enter"}, Action: "select", Description: "선택", Scopes: []string{scopeHome, scopeMyPage, scopeGuideList, scopeGuideDetail, scopeConsultDone}},
		{Keys: []string{"m"}, Action: "open-mypage", Description: "마이페이지", Scopes: []string{scopeHome}},
		{Keys: []string{"c"}, Action: "open-chat", Description: "채팅", Scopes: []string{scopeHome}},
		{Keys: []string{"esc"}, Action: "back", Description: "홈으로", Scopes: []string{scopeChat, scopeGuideList, scopeConsultForm, scopeConsultDone, scopeMyPage}},
		{Keys: []string{"esc", "backspace"}, Action: "clear-category", Description: "카테고리로", Scopes: []string{scopeGuideDetail}},
		{Keys: []string{"enter"}, Action: "send", Description: "보내기", Scopes: []string{scopeChat}},
		{Keys: []string{"tab"}, Action: "quick-fill", Description: "예시 질문", Scopes: []string{scopeChat}},
		{Keys: []string{"tab", "down"}, Action: "next-field", Description: "다음 항목", Scopes: []string{scopeConsultForm}},
		{Keys: []string{"shift+tab", "up"}, Action: "prev-field", Description: "이전 항목", Scopes: []string{scopeConsultForm}},
		{Keys: []string{"left"}, Action: "option-prev", Description: "이전 선택", Scopes: []string{scopeConsultForm, scopeConsultDone}},
		{Keys: []string{"right"}, Action: "option-next", Description: "다음 선택", Scopes: []string{scopeConsultForm, scopeConsultDone}},
		{Keys: []string{"enter"}, Action: "activate", Description: "선택/신청", Scopes: []string{scopeConsultForm}},
	}
}
