package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rebuildhelper/internal/screen"
)

var popularQuestions = []string{
	"접도율이 뭐예요?",
	"재건축 추진위원회 구성 방법은?",
	"AICON에서 사업수지 분석 어디서 하나요?",
	"정비사업 조합설립 절차가 궁금해요",
	"용적률 계산 방법을 알려주세요",
}

type homeItem struct {
	label    string
	desc     string
	color    string
	target   screen.Screen
	question string
}

func homeItems() []homeItem {
	items := []homeItem{
		{label: "AI와 채팅 시작하기", color: "blue", target: screen.Chat},
		{label: "재건축 질문하기", desc: "용어, 법률, 판례 등 전문 지식", color: "blue", target: screen.Chat},
		{label: "AICON 사용법", desc: "자사 솔루션 이용 가이드", color: "green", target: screen.AiconGuide},
		{label: "상담 신청하기", desc: "온라인·오프라인 전문 상담", color: "orange", target: screen.Consultation},
	}
	for _, q := range popularQuestions {
		items = append(items, homeItem{label: "Q. " + q, target: screen.Chat, question: q})
	}
	return items
}

func (a *App) handleHomeKey(m tea.KeyMsg) tea.Cmd {
	items := homeItems()
	scope := scopeHome
	switch {
	case a.keys.isAction(m, "up", scope):
		if a.homeCursor > 0 {
			a.homeCursor--
		}
	case a.keys.isAction(m, "down", scope):
		if a.homeCursor < len(items)-1 {
			a.homeCursor++
		}
	case a.keys.isAction(m, "open-mypage", scope):
		a.navigate(screen.MyPage)
	case a.keys.isAction(m, "open-chat", scope):
		a.navigate(screen.Chat)
	case a.keys.isAction(m, "select", scope):
		item := items[a.homeCursor]
		if item.question != "" {
			a.models.Chat.QuickFill(item.question)
		}
		a.navigate(item.target)
	}
	return nil
}

func (a *App) renderHome(width int) string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("무엇이 궁금하신가요?") + "\n")
	b.WriteString(subtitleStyle.Render("AI가 재건축 관련 질문에 답변해드립니다") + "\n\n")

	items := homeItems()
	for i, it := range items {
		if i == 4 {
			b.WriteString("\n" + cardTitleStyle.Render("최근 많이 묻는 질문") + "\n")
		}
		marker := "  "
		label := it.label
		if i == a.homeCursor {
			marker = cursorStyle.Render("▶ ")
			label = cursorStyle.Render(label)
		}
		line := marker + label
		if it.desc != "" {
			line += "  " + badge(it.desc, it.color)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
