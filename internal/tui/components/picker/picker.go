package picker

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/julianstephens/moodlit/internal/models"
)

// SelectMoodMsg asks the parent to record Mood for today.
type SelectMoodMsg struct {
	Mood models.Mood
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
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
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "влево"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "вправо"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "выбрать"),
		),
	}
}

const tileWidth = 16

var (
	tileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Border(lipgloss.HiddenBorder())

	cursorBorder   = lipgloss.Color("205")
	selectedBorder = lipgloss.Color("252")
)

// Model is the grid of mood tiles.
type Model struct {
	moods      []models.Mood
	columns    int
	cursor     int
	selectedID int
	focused    bool
	keys       KeyMap
}

func New(moods []models.Mood, columns int) Model {
	if columns < 1 {
		columns = 1
	}
	return Model{
		moods:   moods,
		columns: columns,
		keys:    DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetSelected highlights the mood with id; pass nil to clear the highlight.
func (m *Model) SetSelected(mood *models.Mood) {
	m.selectedID = 0
	if mood != nil {
		m.selectedID = mood.ID
	}
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

func (m Model) Cursor() int { return m.cursor }

// Hovered is the mood under the cursor.
func (m Model) Hovered() models.Mood {
	return m.moods[m.cursor]
}

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.moods) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < len(m.moods)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor-m.columns >= 0 {
			m.cursor -= m.columns
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor+m.columns < len(m.moods) {
			m.cursor += m.columns
		}
	case key.Matches(keyMsg, m.keys.Select):
		return m, selectCmd(m.moods[m.cursor])
	}

	return m, nil
}

// ShortcutMood maps the digit keys 1..9 and 0 onto the first ten tiles.
func (m Model) ShortcutMood(msg tea.KeyMsg) (models.Mood, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return models.Mood{}, false
	}
	n, err := strconv.Atoi(string(msg.Runes))
	if err != nil {
		return models.Mood{}, false
	}
	if n == 0 {
		n = 10
	}
	if n > len(m.moods) {
		return models.Mood{}, false
	}
	return m.moods[n-1], true
}

func selectCmd(mood models.Mood) tea.Cmd {
	return func() tea.Msg { return SelectMoodMsg{Mood: mood} }
}

func (m Model) View() string {
	var rows []string
	for start := 0; start < len(m.moods); start += m.columns {
		end := min(start+m.columns, len(m.moods))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, m.renderTile(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTile(i int) string {
	mood := m.moods[i]
	style := tileStyle.
		Background(lipgloss.Color(mood.Color)).
		Foreground(lipgloss.Color(Contrast(mood.Color)))

	label := mood.Emoji + " " + mood.Name
	if mood.ID == m.selectedID {
		label = "✓ " + label
		style = style.Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(selectedBorder)
	}
	if m.focused && i == m.cursor {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(cursorBorder)
	}
	return style.Render(label)
}

// Contrast picks black or white text for a hex background colour. Invalid
// colours get white text.
func Contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#FFFFFF"
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
