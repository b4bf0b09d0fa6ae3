package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/julianstephens/moodlit/internal/models"
)

// DeleteEntryMsg asks the parent to delete the entry with ID.
type DeleteEntryMsg struct {
	ID int64
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "вниз"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete", "x"),
			key.WithHelp("d", "удалить запись"),
		),
	}
}

const EmptyText = "Записей пока нет. Выберите своё настроение сегодня!"

var (
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model lists past entries, most recent first.
type Model struct {
	entries []models.Entry
	cursor  int
	offset  int
	focused bool
	keys    KeyMap
	width   int
	height  int // rows available for entries
}

func New(width, height int) Model {
	return Model{
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetEntries(entries []models.Entry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = max(len(entries)-1, 0)
	}
	m.clampOffset()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

func (m Model) Cursor() int { return m.cursor }

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.entries) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Delete):
		id := m.entries[m.cursor].ID
		return m, func() tea.Msg { return DeleteEntryMsg{ID: id} }
	}

	m.clampOffset()
	return m, nil
}

// clampOffset keeps the cursor inside the visible window, counting entryRows
// lines per entry.
func (m *Model) clampOffset() {
	visible := m.visibleEntries()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

const entryRows = 3

func (m Model) visibleEntries() int {
	if m.height <= 0 {
		return max(len(m.entries), 1)
	}
	return max(m.height/entryRows, 1)
}

func (m Model) View() string {
	if len(m.entries) == 0 {
		return emptyStyle.Render(EmptyText)
	}

	end := min(m.offset+m.visibleEntries(), len(m.entries))
	var b strings.Builder
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderEntry(i))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderEntry(i int) string {
	e := m.entries[i]

	marker := "  "
	if m.focused && i == m.cursor {
		marker = cursorStyle.Render("▸ ")
	}

	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(e.Mood.Color)).
		Padding(0, 1).
		Render(e.Mood.Emoji)

	lines := []string{
		fmt.Sprintf("%s%s %s  %s", marker, swatch, nameStyle.Render(e.Mood.Name), dateStyle.Render(e.Date)),
	}
	if e.HasNote() {
		width := m.width - 6
		if width < 10 {
			width = 40
		}
		for _, line := range strings.Split(wordwrap.String(`"`+e.Note+`"`, width), "\n") {
			lines = append(lines, "      "+noteStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
