package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlit/internal/journal"
	"github.com/julianstephens/moodlit/internal/moods"
	"github.com/julianstephens/moodlit/internal/storage"
	"github.com/julianstephens/moodlit/internal/tui/components/history"
	"github.com/julianstephens/moodlit/internal/tui/components/picker"
)

func setupTestModel(t *testing.T) (Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moodlit.json")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return NewModel(openSession(t, store)), path
}

func openSession(t *testing.T, store storage.Provider) *journal.Session {
	t.Helper()
	day := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	return journal.Open(store, journal.WithClock(func() time.Time { return day }))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectMoodMessage(t *testing.T) {
	m, path := setupTestModel(t)
	happy, _ := moods.ByID(1)

	m, _ = update(t, m, picker.SelectMoodMsg{Mood: happy})

	if got := m.session.Selection(); got == nil || got.ID != happy.ID {
		t.Fatalf("expected selection %v, got %v", happy, got)
	}
	if m.session.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.session.Len())
	}

	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	reopened := openSession(t, store)
	if reopened.Len() != 1 || reopened.Entries()[0].Mood.ID != happy.ID {
		t.Errorf("selection not persisted: %+v", reopened.Entries())
	}
}

func TestDigitShortcutSelectsMood(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = update(t, m, runes("3"))
	if sel := m.session.Selection(); sel == nil || sel.ID != 3 {
		t.Fatalf("expected mood 3, got %v", sel)
	}

	m, _ = update(t, m, runes("0"))
	if sel := m.session.Selection(); sel == nil || sel.ID != 10 {
		t.Fatalf("expected mood 10, got %v", sel)
	}
	if m.session.Len() != 1 {
		t.Errorf("same day selections must replace, got %d entries", m.session.Len())
	}
}

func TestPickerEnterProducesSelectCmd(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg, ok := cmd().(picker.SelectMoodMsg)
	if !ok {
		t.Fatalf("expected SelectMoodMsg, got %T", cmd())
	}
	if msg.Mood.ID != 2 {
		t.Errorf("expected mood 2 under cursor, got %d", msg.Mood.ID)
	}

	m, _ = update(t, m, msg)
	if sel := m.session.Selection(); sel == nil || sel.ID != 2 {
		t.Errorf("expected mood 2 selected, got %v", sel)
	}
}

func TestFocusCycle(t *testing.T) {
	m, _ := setupTestModel(t)

	want := []Focus{FocusNote, FocusHistory, FocusPicker}
	for _, f := range want {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.Focus() != f {
			t.Fatalf("expected focus %d, got %d", f, m.Focus())
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focus() != FocusHistory {
		t.Errorf("shift+tab: expected history focus, got %d", m.Focus())
	}
}

func TestNoteEditing(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	for _, r := range "qc1" {
		m, _ = update(t, m, runes(string(r)))
		if m.quitting {
			t.Fatalf("%q quit while editing a note", r)
		}
	}

	if got := m.session.Note(); got != "qc1" {
		t.Errorf("expected note %q, got %q", "qc1", got)
	}
	if m.session.Selection() != nil {
		t.Error("digits typed into the note must not select a mood")
	}
	if m.State() != StateBrowse {
		t.Error("typing c in the note must not open the clear dialog")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Focus() != FocusPicker {
		t.Errorf("esc should return focus to the picker, got %d", m.Focus())
	}
}

func TestNoteCarriedIntoEntry(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runes("ok"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, runes("1"))

	entry, ok := m.session.TodayEntry()
	if !ok {
		t.Fatal("expected today's entry")
	}
	if entry.Note != "ok" {
		t.Errorf("expected note carried into entry, got %q", entry.Note)
	}
}

func TestDeleteEntryMessage(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = update(t, m, runes("1"))
	id := m.session.Entries()[0].ID

	m, _ = update(t, m, history.DeleteEntryMsg{ID: id + 1})
	if m.session.Len() != 1 {
		t.Fatal("unknown id must not delete anything")
	}

	m, _ = update(t, m, history.DeleteEntryMsg{ID: id})
	if m.session.Len() != 0 {
		t.Errorf("expected empty history, got %d", m.session.Len())
	}
	if m.session.Selection() == nil {
		t.Error("deleting today's entry keeps the selection")
	}
}

func TestHistoryDeleteKey(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = update(t, m, runes("4"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := update(t, m, runes("d"))
	if cmd == nil {
		t.Fatal("expected a delete command")
	}
	msg, ok := cmd().(history.DeleteEntryMsg)
	if !ok {
		t.Fatalf("expected DeleteEntryMsg, got %T", cmd())
	}
	if msg.ID != m.session.Entries()[0].ID {
		t.Errorf("expected id %d, got %d", m.session.Entries()[0].ID, msg.ID)
	}
}

func TestClearConfirmation(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = update(t, m, runes("2"))

	m, _ = update(t, m, runes("c"))
	if m.State() != StateConfirmClear {
		t.Fatalf("expected confirm state, got %d", m.State())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State() != StateBrowse {
		t.Fatalf("esc should cancel, got %d", m.State())
	}
	if m.session.Selection() == nil || m.session.Len() != 1 {
		t.Fatal("cancelled clear must not change the journal")
	}

	m = m.clearToday()
	if m.session.Selection() != nil || m.session.Note() != "" {
		t.Error("expected selection and note reset")
	}
	if m.session.Len() != 0 {
		t.Errorf("expected today's entry removed, got %d", m.session.Len())
	}
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)
	m, cmd := update(t, m, runes("q"))
	if !m.quitting || cmd == nil {
		t.Fatal("expected quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestView(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})

	view := m.View()
	for _, want := range []string{"Мини-дневник настроения", "15 июня 2025", history.EmptyText, "Всего записей: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Ваше настроение на сегодня") {
		t.Error("summary shown without a selection")
	}

	m, _ = update(t, m, runes("1"))
	view = m.View()
	for _, want := range []string{"Ваше настроение на сегодня", "Счастливый", "Всего записей: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
