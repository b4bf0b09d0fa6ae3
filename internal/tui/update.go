package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/tui/components/history"
	"github.com/julianstephens/moodlit/internal/tui/components/picker"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateConfirmClear {
		return m.updateConfirmClear(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case picker.SelectMoodMsg:
		return m.selectMood(msg.Mood), nil

	case history.DeleteEntryMsg:
		return m.deleteEntry(msg.ID), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			return m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.ShiftTab):
			return m.setFocus((m.focus - 1 + focusCount) % focusCount)
		}

		if m.focus == FocusNote {
			if key.Matches(msg, m.keys.Leave) {
				return m.setFocus(FocusPicker)
			}
			return m.updateNote(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			return m.startConfirmClear()
		}

		if mood, ok := m.picker.ShortcutMood(msg); ok {
			return m.selectMood(mood), nil
		}

		var cmd tea.Cmd
		switch m.focus {
		case FocusPicker:
			m.picker, cmd = m.picker.Update(msg)
		case FocusHistory:
			m.history, cmd = m.history.Update(msg)
		}
		return m, cmd
	}

	if m.focus == FocusNote {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.note.SetWidth(min(max(width-6, 20), maxNoteWidth))
	m.history.SetSize(width-4, max(height-chromeRows, 3))
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.picker.Blur()
	m.history.Blur()
	m.note.Blur()

	var cmd tea.Cmd
	switch f {
	case FocusPicker:
		m.picker.Focus()
	case FocusNote:
		cmd = m.note.Focus()
	case FocusHistory:
		m.history.Focus()
	}
	return m, cmd
}

func (m Model) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.note.Value()

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)

	if text := m.note.Value(); text != before {
		if err := m.session.SetNote(text); err != nil {
			m.status = saveError(err)
		}
	}
	return m, cmd
}

func (m Model) selectMood(mood models.Mood) Model {
	if _, err := m.session.SelectMood(mood); err != nil {
		m.status = saveError(err)
	} else {
		m.status = fmt.Sprintf("Сохранено: %s", mood)
	}
	m.refresh()
	return m
}

func (m Model) deleteEntry(id int64) Model {
	removed, err := m.session.DeleteEntry(id)
	switch {
	case err != nil:
		m.status = saveError(err)
	case removed:
		m.status = "Запись удалена"
	}
	m.refresh()
	return m
}

func (m Model) clearToday() Model {
	if err := m.session.ClearToday(); err != nil {
		m.status = saveError(err)
	} else {
		m.status = "Сегодняшняя запись очищена"
	}
	m.refresh()
	return m
}

func (m Model) startConfirmClear() (tea.Model, tea.Cmd) {
	m.confirm = &ConfirmFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Очистить сегодняшнюю запись?").
				Description("Настроение и заметка за " + m.session.Today() + " будут удалены.").
				Affirmative("Да").
				Negative("Нет").
				Value(&m.confirm.Confirmed),
		),
	)
	m.state = StateConfirmClear
	return m, m.form.Init()
}

func (m Model) updateConfirmClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Leave) {
		return m.endConfirmClear(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		confirmed := m.confirm.Confirmed
		m = m.endConfirmClear()
		if confirmed {
			m = m.clearToday()
		}
		return m, nil
	case huh.StateAborted:
		return m.endConfirmClear(), nil
	}
	return m, cmd
}

func (m Model) endConfirmClear() Model {
	m.state = StateBrowse
	m.form = nil
	m.confirm = nil
	return m
}

// refresh pulls everything the view shows back out of the session.
func (m *Model) refresh() {
	m.picker.SetSelected(m.session.Selection())
	m.history.SetEntries(m.session.Entries())
	if note := m.session.Note(); m.note.Value() != note {
		m.note.SetValue(note)
	}
}

func saveError(err error) string {
	logger.Error("failed to save journal", "error", err)
	return "Не удалось сохранить: " + err.Error()
}
