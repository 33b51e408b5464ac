package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rebuildhelper/internal/profile"
	"github.com/jask/rebuildhelper/internal/screen"
)

const (
	myRowNotifications = iota
	myRowAsk
	myRowConsult
	myRowCount
)

func (a *App) handleMyPageKey(m tea.KeyMsg) tea.Cmd {
	scope := scopeMyPage
	switch {
	case a.keys.isAction(m, "back", scope):
		a.navigate(screen.Home)
	case a.keys.isAction(m, "up", scope):
		if a.myCursor > 0 {
			a.myCursor--
		}
	case a.keys.isAction(m, "down", scope):
		if a.myCursor < myRowCount-1 {
			a.myCursor++
		}
	case a.keys.isAction(m, "select", scope):
		switch a.myCursor {
		case myRowNotifications:
			if a.models.Profile.ToggleNotifications() {
				a.setStatus("상담 일정 리마인드를 켰습니다")
			} else {
				a.setStatus("상담 일정 리마인드를 껐습니다")
			}
		case myRowAsk:
			a.navigate(screen.Chat)
		case myRowConsult:
			a.navigate(screen.Consultation)
		}
	}
	return nil
}

func (a *App) renderMyPage(width int) string {
	p := a.models.Profile
	cardWidth := max(10, width-2)
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(p.User().Name+"님") + "\n")
	b.WriteString(subtitleStyle.Render("재건축 도우미를 이용해주셔서 감사합니다") + "\n\n")

	marker := func(row int) string {
		if row == a.myCursor {
			return cursorStyle.Render("▶ ")
		}
		return "  "
	}

	toggle := "OFF"
	if p.Notifications() {
		toggle = "ON"
	}
	b.WriteString(cardStyle.Width(cardWidth).Render(
		cardTitleStyle.Render("알림 설정") + "\n" +
			marker(myRowNotifications) + "상담 일정 리마인드  " + badge(toggle, "blue") + "\n" +
			mutedStyle.Render("상담 예정일 1일 전 알림을 받습니다"),
	) + "\n")

	var q strings.Builder
	q.WriteString(cardTitleStyle.Render("나의 질문 내역") + "\n")
	q.WriteString(mutedStyle.Render("최근 AI에게 질문한 내용들입니다"))
	questions := p.Questions()
	for _, item := range questions {
		line := "\n• " + item.Question + "\n  " + mutedStyle.Render(item.Timestamp)
		if item.Answered {
			line += " " + badge("답변완료", "green")
		}
		q.WriteString(line)
	}
	if len(questions) == 0 {
		q.WriteString("\n" + mutedStyle.Render("아직 질문한 내역이 없습니다."))
	}
	b.WriteString(cardStyle.Width(cardWidth).Render(q.String()) + "\n")

	var c strings.Builder
	c.WriteString(cardTitleStyle.Render("상담 접수 현황") + "\n")
	c.WriteString(mutedStyle.Render("신청한 상담의 진행 상황을 확인하세요"))
	consultations := p.Consultations()
	for _, item := range consultations {
		c.WriteString("\n" + renderConsultation(item))
	}
	if len(consultations) == 0 {
		c.WriteString("\n" + mutedStyle.Render("신청한 상담이 없습니다."))
	}
	b.WriteString(cardStyle.Width(cardWidth).Render(c.String()) + "\n")

	b.WriteString(marker(myRowAsk) + "새로운 질문하기\n")
	b.WriteString(marker(myRowConsult) + "상담 신청하기\n")
	return b.String()
}

func renderConsultation(item profile.Consultation) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("• %s %s %s\n", item.ID, badge(item.Mode.Label(), "gray"), badge(string(item.Status), item.Status.Color())))
	b.WriteString("  " + item.CategoryName() + "  " + mutedStyle.Render("신청일 "+item.RequestDate))
	if item.Status == profile.StatusBooked {
		b.WriteString("\n  " + item.ScheduledDate + " " + item.ScheduledTime)
		b.WriteString("\n  " + summaryStyle.Render("상담 예정일이 다가오고 있습니다"))
	}
	return b.String()
}
