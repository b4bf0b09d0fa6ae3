package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateConfirmClear && m.form != nil {
		return docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.viewHeader(),
			dangerStyle.Render("Очистка"),
			m.form.View(),
		))
	}

	sections := []string{
		m.viewHeader(),
		m.sectionTitle(FocusPicker, "Как вы себя чувствуете сегодня?"),
		m.picker.View(),
		m.sectionTitle(FocusNote, "Добавьте заметку (необязательно):"),
		m.note.View(),
	}
	if summary := m.viewToday(); summary != "" {
		sections = append(sections, summary)
	}
	sections = append(sections,
		m.sectionTitle(FocusHistory, "📅 История настроений"),
		m.history.View(),
		m.viewFooter(),
		m.help.View(m),
	)

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("📔 Мини-дневник настроения"),
		dateStyle.Render(m.session.Today()),
	)
}

func (m Model) sectionTitle(f Focus, title string) string {
	if m.focus == f {
		return activeSectionStyle.Render(title)
	}
	return sectionStyle.Render(title)
}

// viewToday is empty until a mood is picked.
func (m Model) viewToday() string {
	sel := m.session.Selection()
	if sel == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Ваше настроение на сегодня:\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(sel.Color)).
		Bold(true).
		Render(sel.Emoji + " " + sel.Name))
	if note := strings.TrimSpace(m.session.Note()); note != "" {
		b.WriteString("\n")
		b.WriteString(quoteStyle.Render("\"" + note + "\""))
	}
	return summaryStyle.MarginTop(1).Render(b.String())
}

func (m Model) viewFooter() string {
	footer := statsStyle.Render(fmt.Sprintf("Всего записей: %d", m.session.Len()))
	if m.status != "" {
		footer += "  " + statsStyle.Render(m.status)
	}
	return footer
}
