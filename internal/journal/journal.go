// Package journal owns the diary: the list of daily entries, today's mood
// selection and the pending note, plus mirroring them to storage.
package journal

import (
	"time"

	"github.com/julianstephens/moodlit/internal/models"
)

// Journal holds the in-memory diary. It is not safe for concurrent use;
// every caller drives it from a single goroutine.
type Journal struct {
	entries    []models.Entry // most recent insert first
	selection  *models.Mood
	note       string
	now        func() time.Time
	formatDate func(time.Time) string
}

type Option func(*Journal)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithDateFormatter changes how "today" is rendered into an entry date.
func WithDateFormatter(format func(time.Time) string) Option {
	return func(j *Journal) { j.formatDate = format }
}

func New(opts ...Option) *Journal {
	j := &Journal{
		entries:    []models.Entry{},
		now:        time.Now,
		formatDate: FormatDate,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Today is the date key entries are filed under right now.
func (j *Journal) Today() string {
	return j.formatDate(j.now())
}

// SelectMood records mood for today. Today's entry, if any, is replaced in
// place with a fresh id and the current note; otherwise a new entry goes to
// the front of the history.
func (j *Journal) SelectMood(mood models.Mood) models.Entry {
	today := j.Today()
	entry := models.Entry{
		ID:   j.nextID(),
		Mood: mood,
		Date: today,
		Note: j.note,
	}

	if i := j.indexOfDate(today); i >= 0 {
		j.entries[i] = entry
	} else {
		j.entries = append([]models.Entry{entry}, j.entries...)
	}

	selected := mood
	j.selection = &selected
	return entry
}

// SetNote updates the pending note. It reaches an entry on the next
// SelectMood.
func (j *Journal) SetNote(text string) {
	j.note = text
}

// DeleteEntry removes the entry with id and reports whether it existed.
// The selection is left alone even when the entry was today's.
func (j *Journal) DeleteEntry(id int64) bool {
	for i, e := range j.entries {
		if e.ID == id {
			j.entries = append(j.entries[:i:i], j.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ClearToday drops today's entry, if any, and resets the selection and note.
func (j *Journal) ClearToday() {
	if i := j.indexOfDate(j.Today()); i >= 0 {
		j.entries = append(j.entries[:i:i], j.entries[i+1:]...)
	}
	j.selection = nil
	j.note = ""
}

// Hydrate replaces the whole state, typically once at startup.
func (j *Journal) Hydrate(s models.State) {
	j.entries = append([]models.Entry{}, s.History...)
	j.selection = nil
	if s.Selection != nil {
		selected := *s.Selection
		j.selection = &selected
	}
	j.note = s.Note
}

// Snapshot returns a copy of the state suitable for persisting.
func (j *Journal) Snapshot() models.State {
	return models.State{
		History:   j.Entries(),
		Selection: j.Selection(),
		Note:      j.note,
	}
}

// Entries returns a copy of the history, most recent first.
func (j *Journal) Entries() []models.Entry {
	return append([]models.Entry{}, j.entries...)
}

// Selection returns a copy of today's mood, nil when none is selected.
func (j *Journal) Selection() *models.Mood {
	if j.selection == nil {
		return nil
	}
	selected := *j.selection
	return &selected
}

func (j *Journal) Note() string {
	return j.note
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// TodayEntry returns the entry filed under today's date.
func (j *Journal) TodayEntry() (models.Entry, bool) {
	if i := j.indexOfDate(j.Today()); i >= 0 {
		return j.entries[i], true
	}
	return models.Entry{}, false
}

func (j *Journal) indexOfDate(date string) int {
	for i, e := range j.entries {
		if e.Date == date {
			return i
		}
	}
	return -1
}

// nextID is the current Unix millisecond, bumped past every id already in
// the history so ids stay unique and a replacement never reuses one.
func (j *Journal) nextID() int64 {
	id := j.now().UnixMilli()
	for _, e := range j.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}
