package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rebuildhelper/internal/screen"
)

func (a *App) handleGuideKey(m tea.KeyMsg) tea.Cmd {
	g := a.models.Guide
	if _, ok := g.Selected(); ok {
		a.handleGuideDetailKey(m)
		return nil
	}
	visible := g.Visible()
	switch {
	case a.keys.isAction(m, "back", scopeGuideList):
		a.navigate(screen.Home)
		return nil
	case a.keys.isAction(m, "up", scopeGuideList):
		if a.guideCursor > 0 {
			a.guideCursor--
		}
		return nil
	case a.keys.isAction(m, "down", scopeGuideList):
		if a.guideCursor < len(visible)-1 {
			a.guideCursor++
		}
		return nil
	case a.keys.isAction(m, "select", scopeGuideList):
		if len(visible) == 0 {
			return nil
		}
		g.Select(visible[a.guideCursor].ID)
		a.detailCursor = 0
		a.guideSearch.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.guideSearch, cmd = a.guideSearch.Update(m)
	if g.Query() != a.guideSearch.Value() {
		g.SetQuery(a.guideSearch.Value())
		a.guideCursor = 0
	}
	return cmd
}

func (a *App) handleGuideDetailKey(m tea.KeyMsg) {
	g := a.models.Guide
	fns := g.Detail()
	switch {
	case a.keys.isAction(m, "clear-category", scopeGuideDetail):
		g.Clear()
		a.guideSearch.Focus()
	case a.keys.isAction(m, "up", scopeGuideDetail):
		if a.detailCursor > 0 {
			a.detailCursor--
		}
	case a.keys.isAction(m, "down", scopeGuideDetail):
		if a.detailCursor < len(fns)-1 {
			a.detailCursor++
		}
	case a.keys.isAction(m, "select", scopeGuideDetail):
		if len(fns) == 0 {
			return
		}
		id, _ := g.Selected()
		if f, ok := g.OpenTutorial(id, fns[a.detailCursor].Name); ok {
			a.setStatus(fmt.Sprintf("튜토리얼 준비 중: %s (%s)", f.Name, f.Tutorial))
		}
	}
}

func (a *App) renderGuide(width int) string {
	g := a.models.Guide
	var b strings.Builder
	if _, ok := g.Selected(); ok {
		b.WriteString(mutedStyle.Render("← 카테고리로 돌아가기 (esc)") + "\n\n")
		title := g.SelectedTitle()
		if title != "" {
			b.WriteString(cardTitleStyle.Render(title) + "\n")
		}
		fns := g.Detail()
		for i, f := range fns {
			head := f.Name
			if i == a.detailCursor {
				head = cursorStyle.Render("▶ " + head)
			} else {
				head = "  " + head
			}
			body := head + "  " + badge(f.Tutorial, "gray") + "\n" +
				mutedStyle.Render(f.Description) + "\n" +
				buttonStyle.Render("튜토리얼 보기") + " " + mutedStyle.Render("[지금 실행하기]")
			b.WriteString(cardStyle.Width(max(10, width-2)).Render(body) + "\n")
		}
		return b.String()
	}

	b.WriteString(a.guideSearch.View() + "\n\n")
	visible := g.Visible()
	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("검색 결과가 없습니다.") + "\n")
		if s := g.Suggest(g.Query()); s != "" {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("혹시 %q 을(를) 찾으시나요?", s)) + "\n")
		}
		return b.String()
	}
	for i, c := range visible {
		title := c.Title
		if i == a.guideCursor {
			title = cursorStyle.Render("▶ " + title)
		} else {
			title = "  " + title
		}
		names := make([]string, 0, len(c.Functions))
		for _, f := range c.Functions {
			names = append(names, badge(f.Name, c.Color))
		}
		body := title + "\n" +
			mutedStyle.Render(fmt.Sprintf("%d개 기능 • 상세 가이드 제공", len(c.Functions))) + "\n" +
			strings.Join(names, " ")
		b.WriteString(cardStyle.Width(max(10, width-2)).BorderForeground(tokenColor(c.Color)).Render(body) + "\n")
	}
	return b.String()
}
