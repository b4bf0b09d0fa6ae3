package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlit/internal/journal"
	"github.com/julianstephens/moodlit/internal/moods"
	"github.com/julianstephens/moodlit/internal/tui/components/history"
	"github.com/julianstephens/moodlit/internal/tui/components/picker"
)

type SessionState int

const (
	StateBrowse SessionState = iota
	StateConfirmClear
)

// Focus is the section that receives keys.
type Focus int

const (
	FocusPicker Focus = iota
	FocusNote
	FocusHistory
)

const (
	focusCount    = 3
	pickerColumns = 5
	noteHeight    = 4
	maxNoteWidth  = 80
	// rows taken by everything except the history list
	chromeRows = 28
)

type ConfirmFormModel struct {
	Confirmed bool
}

type Model struct {
	session  *journal.Session
	state    SessionState
	focus    Focus
	keys     KeyMap
	help     help.Model
	picker   picker.Model
	note     textarea.Model
	history  history.Model
	form     *huh.Form
	confirm  *ConfirmFormModel
	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(session *journal.Session) Model {
	pm := picker.New(moods.All(), pickerColumns)
	pm.SetSelected(session.Selection())
	pm.Focus()

	ta := textarea.New()
	ta.Placeholder = "Опишите, почему вы так себя чувствуете, или запишите мысли на сегодня..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(noteHeight)
	ta.SetWidth(maxNoteWidth)
	ta.SetValue(session.Note())
	ta.Blur()

	hm := history.New(0, 0)
	hm.SetEntries(session.Entries())

	return Model{
		session: session,
		state:   StateBrowse,
		focus:   FocusPicker,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		picker:  pm,
		note:    ta,
		history: hm,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Focus() Focus { return m.focus }

func (m Model) State() SessionState { return m.state }

func (m Model) Status() string { return m.status }

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab}
	switch m.focus {
	case FocusPicker:
		keys = append(keys, m.picker.Keys().Select, m.keys.Shortcut)
	case FocusNote:
		keys = append(keys, m.keys.Leave)
	case FocusHistory:
		keys = append(keys, m.history.Keys().Delete)
	}
	if m.focus != FocusNote {
		keys = append(keys, m.keys.Clear, m.keys.Quit, m.keys.Help)
	} else {
		keys = append(keys, m.keys.ForceQuit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	pk := m.picker.Keys()
	hk := m.history.Keys()
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{pk.Up, pk.Down, pk.Left, pk.Right, pk.Select, m.keys.Shortcut},
		{hk.Delete, m.keys.Clear, m.keys.Leave},
	}
}
