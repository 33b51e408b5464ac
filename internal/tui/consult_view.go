package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/rebuildhelper/internal/consult"
	"github.com/jask/rebuildhelper/internal/screen"
)

type formRow int

const (
	rowMode formRow = iota
	rowName
	rowPhone
	rowEmail
	rowCategory
	rowDate
	rowTime
	rowMessage
	rowSubmit
	formRowCount
)

var rowFields = map[formRow]consult.Field{
	rowName:  consult.FieldName,
	rowPhone: consult.FieldPhone,
	rowEmail: consult.FieldEmail,
	rowDate:  consult.FieldPreferredDate,
}

var fieldLabels = map[consult.Field]string{
	consult.FieldName:          "이름 *",
	consult.FieldPhone:         "연락처 *",
	consult.FieldEmail:         "이메일",
	consult.FieldCategory:      "상담 분야 *",
	consult.FieldPreferredDate: "희망 날짜",
	consult.FieldPreferredTime: "희망 시간",
	consult.FieldMessage:       "상담 내용",
}

var fieldPlaceholders = map[consult.Field]string{
	consult.FieldName:          "성함을 입력해주세요",
	consult.FieldPhone:         "010-0000-0000",
	consult.FieldEmail:         "example@email.com",
	consult.FieldPreferredDate: "YYYY-MM-DD",
}

// resetFormInputs rebuilds the widgets from the current draft.
func (a *App) resetFormInputs() {
	d := a.models.Form.Draft()
	a.formInputs = make(map[consult.Field]textinput.Model, len(rowFields))
	for _, f := range rowFields {
		in := newInput(fieldLabels[f]+": ", fieldPlaceholders[f])
		in.SetValue(d.Get(f))
		a.formInputs[f] = in
	}
	ta := textarea.New()
	ta.Placeholder = "상담받고 싶은 내용을 자세히 적어주세요..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(max(10, a.contentWidth()-4))
	ta.SetValue(d.Message)
	a.formMessage = ta
	a.categoryIdx = indexOf(categoryIDs(), d.Category)
	a.slotIdx = indexOf(consult.TimeSlots(), d.PreferredTime)
	a.formRow = rowName
	a.doneCursor = 0
}

func categoryIDs() []string {
	cats := consult.Categories()
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.ID)
	}
	return out
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func (a *App) blurForm() {
	for f, in := range a.formInputs {
		in.Blur()
		a.formInputs[f] = in
	}
	a.formMessage.Blur()
}

func (a *App) focusFormRow() {
	a.blurForm()
	if f, ok := rowFields[a.formRow]; ok {
		in := a.formInputs[f]
		in.Focus()
		a.formInputs[f] = in
	}
	if a.formRow == rowMessage {
		a.formMessage.Focus()
	}
}

func (a *App) moveFormRow(delta int) {
	a.formRow = formRow((int(a.formRow) + delta + int(formRowCount)) % int(formRowCount))
	a.focusFormRow()
}

func (a *App) setField(f consult.Field, v string) {
	if _, err := a.models.Form.SetField(f, v); err != nil {
		a.log.Error("set consultation field", zap.String("field", string(f)), zap.Error(err))
	}
}

func cycle(idx, delta, n int) int {
	if idx < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return (idx + delta + n) % n
}

func (a *App) handleConsultKey(m tea.KeyMsg) tea.Cmd {
	if a.models.Form.Submitted() {
		a.handleConsultDoneKey(m)
		return nil
	}
	scope := scopeConsultForm
	form := a.models.Form
	switch {
	case a.keys.isAction(m, "back", scope):
		a.navigate(screen.Home)
		return nil
	case a.keys.isAction(m, "next-field", scope):
		a.moveFormRow(1)
		return nil
	case a.keys.isAction(m, "prev-field", scope):
		a.moveFormRow(-1)
		return nil
	}

	delta := 0
	if a.keys.isAction(m, "option-prev", scope) {
		delta = -1
	} else if a.keys.isAction(m, "option-next", scope) {
		delta = 1
	}
	activate := a.keys.isAction(m, "activate", scope)

	switch a.formRow {
	case rowMode:
		if delta != 0 || activate {
			form.ToggleMode()
		}
		return nil
	case rowCategory:
		ids := categoryIDs()
		if delta != 0 {
			a.categoryIdx = cycle(a.categoryIdx, delta, len(ids))
			a.setField(consult.FieldCategory, ids[a.categoryIdx])
		} else if activate {
			if a.categoryIdx < 0 {
				a.categoryIdx = 0
			}
			a.setField(consult.FieldCategory, ids[a.categoryIdx])
			a.moveFormRow(1)
		}
		return nil
	case rowTime:
		slots := consult.TimeSlots()
		if delta != 0 {
			a.slotIdx = cycle(a.slotIdx, delta, len(slots))
			a.setField(consult.FieldPreferredTime, slots[a.slotIdx])
		} else if activate {
			if a.slotIdx < 0 {
				a.slotIdx = 0
			}
			a.setField(consult.FieldPreferredTime, slots[a.slotIdx])
			a.moveFormRow(1)
		}
		return nil
	case rowSubmit:
		if activate {
			a.submitConsultation()
		}
		return nil
	case rowMessage:
		var cmd tea.Cmd
		a.formMessage, cmd = a.formMessage.Update(m)
		a.setField(consult.FieldMessage, a.formMessage.Value())
		return cmd
	}

	f, ok := rowFields[a.formRow]
	if !ok {
		return nil
	}
	if activate {
		a.moveFormRow(1)
		return nil
	}
	in := a.formInputs[f]
	var cmd tea.Cmd
	in, cmd = in.Update(m)
	a.formInputs[f] = in
	a.setField(f, in.Value())
	return cmd
}

// submitConsultation is a no-op with a hint while required fields are
// missing; the submit button is rendered disabled in that state.
func (a *App) submitConsultation() {
	form := a.models.Form
	if !form.CanSubmit() {
		missing := form.Draft().Missing()
		labels := make([]string, 0, len(missing))
		for _, f := range missing {
			labels = append(labels, strings.TrimSuffix(fieldLabels[f], " *"))
		}
		a.setError("필수 항목을 입력해주세요: " + strings.Join(labels, ", "))
		return
	}
	rec, err := form.Submit()
	if err != nil {
		a.setError(err.Error())
		return
	}
	a.blurForm()
	a.doneCursor = 0
	a.setStatus("상담 신청 완료 · 접수번호 " + rec.ID)
}

func (a *App) handleConsultDoneKey(m tea.KeyMsg) {
	scope := scopeConsultDone
	switch {
	case a.keys.isAction(m, "back", scope):
		a.navigate(screen.Home)
	case a.keys.isAction(m, "option-prev", scope), a.keys.isAction(m, "option-next", scope):
		a.doneCursor = 1 - a.doneCursor
	case a.keys.isAction(m, "select", scope):
		if a.doneCursor == 0 {
			a.models.Form.Reset()
			a.resetFormInputs()
			a.focusFormRow()
			a.setStatus("")
			return
		}
		a.navigate(screen.Home)
	}
}

func (a *App) renderConsult(width int) string {
	form := a.models.Form
	if rec, ok := form.Record(); ok {
		return a.renderConsultDone(rec, width)
	}
	d := form.Draft()
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("재건축 전문가와 1:1 상담을 받아보세요") + "\n\n")

	row := func(r formRow, content string) {
		marker := "  "
		if r == a.formRow {
			marker = cursorStyle.Render("▶ ")
		}
		b.WriteString(marker + content + "\n")
	}

	row(rowMode, fmt.Sprintf("상담 방식: %s %s", cardTitleStyle.Render(d.Mode.Label()), badge(d.Mode.Channel(), "blue")))
	b.WriteString("    " + mutedStyle.Render(d.Mode.Description()) + "\n\n")

	b.WriteString(cardTitleStyle.Render("연락처 정보") + "\n")
	row(rowName, a.formInputs[consult.FieldName].View())
	row(rowPhone, a.formInputs[consult.FieldPhone].View())
	row(rowEmail, a.formInputs[consult.FieldEmail].View())
	b.WriteString("\n")

	cats := consult.Categories()
	opts := make([]string, 0, len(cats))
	for _, c := range cats {
		label := c.Name
		if c.ID == d.Category {
			opts = append(opts, buttonStyle.Render(label))
			continue
		}
		opts = append(opts, badge(label, c.Color))
	}
	row(rowCategory, fieldLabels[consult.FieldCategory]+": "+strings.Join(opts, " "))
	b.WriteString("\n" + cardTitleStyle.Render("희망 일정") + "\n")
	row(rowDate, a.formInputs[consult.FieldPreferredDate].View())

	slots := make([]string, 0, 7)
	for _, s := range consult.TimeSlots() {
		if s == d.PreferredTime {
			slots = append(slots, buttonStyle.Render(s))
			continue
		}
		slots = append(slots, mutedStyle.Render(s))
	}
	row(rowTime, fieldLabels[consult.FieldPreferredTime]+": "+strings.Join(slots, " "))
	b.WriteString("\n")
	row(rowMessage, fieldLabels[consult.FieldMessage])
	b.WriteString(a.formMessage.View() + "\n\n")

	submit := disabledStyle.Render("상담 신청하기")
	if form.CanSubmit() {
		submit = buttonStyle.Render("상담 신청하기")
	}
	row(rowSubmit, submit)
	b.WriteString(mutedStyle.Render("개인정보는 상담 목적으로만 사용되며 안전하게 보호됩니다.") + "\n")
	return b.String()
}

func (a *App) renderConsultDone(rec consult.Record, width int) string {
	d := rec.Draft
	lines := []string{
		cardTitleStyle.Render("상담 신청 완료"),
		fmt.Sprintf("%s이 접수되었습니다.", d.Mode.Label()),
		"",
		"접수번호  " + cardTitleStyle.Render(rec.ID),
		"상담방식  " + d.Mode.Label(),
		"신청자    " + d.Name,
		"연락처    " + d.Phone,
		"상담분야  " + consult.CategoryName(d.Category),
	}
	if d.PreferredDate != "" {
		lines = append(lines, "희망일정  "+strings.TrimSpace(d.PreferredDate+" "+d.PreferredTime))
	}
	lines = append(lines,
		"접수시각  "+rec.SubmittedAt.In(a.tz).Format("2006-01-02 15:04"),
		"",
		mutedStyle.Render("담당자가 1-2일 내에 연락드릴 예정입니다."),
		"",
	)
	buttons := []string{"추가 상담 신청", "홈으로 돌아가기"}
	for i, label := range buttons {
		if i == a.doneCursor {
			buttons[i] = buttonStyle.Render(label)
		} else {
			buttons[i] = mutedStyle.Render("[" + label + "]")
		}
	}
	lines = append(lines, strings.Join(buttons, " "))
	return cardStyle.Width(max(10, width-2)).Render(strings.Join(lines, "\n"))
}
