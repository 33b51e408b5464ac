package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/rebuildhelper/internal/chat"
	"github.com/jask/rebuildhelper/internal/screen"
)

func (a *App) handleChatKey(m tea.KeyMsg) tea.Cmd {
	conv := a.models.Chat
	switch {
	case a.keys.isAction(m, "back", scopeChat):
		a.navigate(screen.Home)
		return nil
	case a.keys.isAction(m, "send", scopeChat):
		conv.SetInput(a.chatInput.Value())
		if _, ok := conv.SendInput(); ok {
			a.chatInput.SetValue("")
		}
		return nil
	case a.keys.isAction(m, "quick-fill", scopeChat):
		examples := chat.ExampleQuestions()
		q := examples[a.exampleIdx%len(examples)]
		a.exampleIdx++
		conv.QuickFill(q)
		a.chatInput.SetValue(q)
		a.chatInput.CursorEnd()
		return nil
	}
	var cmd tea.Cmd
	a.chatInput, cmd = a.chatInput.Update(m)
	conv.SetInput(a.chatInput.Value())
	return cmd
}

func (a *App) renderChat(width int, height int) string {
	bubbleWidth := max(12, width*4/5)
	var blocks []string
	for _, msg := range a.models.Chat.Messages() {
		blocks = append(blocks, a.renderMessage(msg, bubbleWidth, width))
	}
	transcript := strings.Join(blocks, "\n")

	var foot strings.Builder
	foot.WriteString(mutedStyle.Render("빠른 질문 예시 (tab):") + "\n")
	for _, q := range chat.ExampleQuestions() {
		foot.WriteString("  " + mutedStyle.Render(q) + "\n")
	}
	topics := make([]string, 0, 4)
	for _, t := range chat.QuickTopics() {
		topics = append(topics, badge(t.Label, t.Color))
	}
	foot.WriteString(strings.Join(topics, " ") + "\n")
	foot.WriteString(a.chatInput.View())
	footer := foot.String()

	// Keep the newest messages visible above the input area.
	if height > 0 {
		room := height - lipgloss.Height(footer) - 1
		lines := strings.Split(transcript, "\n")
		if room > 0 && len(lines) > room {
			lines = lines[len(lines)-room:]
		}
		transcript = strings.Join(lines, "\n")
	}
	return transcript + "\n\n" + footer
}

func (a *App) renderMessage(msg chat.Message, bubbleWidth, width int) string {
	style := botBubble
	if msg.FromUser() {
		style = userBubble
	}
	body := msg.Text
	if msg.Summary != "" {
		body += "\n" + summaryStyle.Render("💡 "+msg.Summary)
	}
	if len(msg.Links) > 0 {
		links := make([]string, 0, len(msg.Links))
		for _, l := range msg.Links {
			links = append(links, "🔍 "+l)
		}
		body += "\n" + strings.Join(links, "  ")
	}
	stamp := mutedStyle.Render(msg.Timestamp.In(a.tz).Format("15:04"))
	bubble := style.Width(bubbleWidth).Render(body) + "\n" + stamp
	if msg.FromUser() {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	}
	return bubble
}
