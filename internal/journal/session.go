package journal

import (
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/storage"
)

// Session is a Journal bound to a store: it hydrates once on Open and
// persists the full state after every intent.
type Session struct {
	*Journal
	mirror *Mirror
}

// Open restores the saved state from store into a new Journal.
func Open(store storage.Provider, opts ...Option) *Session {
	s := &Session{
		Journal: New(opts...),
		mirror:  NewMirror(store),
	}
	s.Journal.Hydrate(s.mirror.Restore())
	logger.Debug("journal restored", "entries", s.Len(), "today", s.Today())
	return s
}

func (s *Session) SelectMood(mood models.Mood) (models.Entry, error) {
	entry := s.Journal.SelectMood(mood)
	logger.Info("mood selected", "mood", mood.Name, "date", entry.Date, "id", entry.ID)
	return entry, s.Save()
}

func (s *Session) SetNote(text string) error {
	s.Journal.SetNote(text)
	return s.Save()
}

// DeleteEntry removes the entry with id. Unknown ids are a no-op and
// nothing is written.
func (s *Session) DeleteEntry(id int64) (bool, error) {
	if !s.Journal.DeleteEntry(id) {
		logger.Debug("delete of unknown entry ignored", "id", id)
		return false, nil
	}
	logger.Info("entry deleted", "id", id)
	return true, s.Save()
}

func (s *Session) ClearToday() error {
	s.Journal.ClearToday()
	logger.Info("today cleared", "date", s.Today())
	return s.Save()
}

// Save writes the current state to the store.
func (s *Session) Save() error {
	if err := s.mirror.Persist(s.Snapshot()); err != nil {
		logger.Error("failed to persist journal", "error", err)
		return err
	}
	return nil
}
