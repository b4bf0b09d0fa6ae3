package journal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/storage"
	"github.com/julianstephens/moodlit/internal/validation"
)

// Mirror maps journal state onto three storage keys: the history as a JSON
// array, today's mood as a JSON object or null, and the note as raw text.
type Mirror struct {
	store storage.Provider
}

func NewMirror(store storage.Provider) *Mirror {
	return &Mirror{store: store}
}

// Restore reads the saved state. Missing or malformed values fall back to
// their defaults; they are logged, never returned as errors.
func (m *Mirror) Restore() models.State {
	state := models.State{History: []models.Entry{}}

	if raw, ok := m.read(constants.KeyHistory); ok {
		var history []models.Entry
		if err := decodeHistory(raw, &history); err != nil {
			logger.Warn("discarding malformed value", "key", constants.KeyHistory, "error", err)
		} else {
			state.History = history
		}
	}

	if raw, ok := m.read(constants.KeyTodayMood); ok {
		var mood *models.Mood
		if err := json.Unmarshal(raw, &mood); err != nil {
			logger.Warn("discarding malformed value", "key", constants.KeyTodayMood, "error", err)
		} else if mood != nil {
			if err := mood.Validate(); err != nil {
				logger.Warn("discarding malformed value", "key", constants.KeyTodayMood, "error", err)
			} else {
				state.Selection = mood
			}
		}
	}

	if raw, ok := m.read(constants.KeyTodayNote); ok {
		state.Note = string(raw)
	}

	return state
}

func (m *Mirror) read(key string) ([]byte, bool) {
	raw, err := m.store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("failed to read value", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func decodeHistory(raw []byte, out *[]models.Entry) error {
	var history []models.Entry
	if err := json.Unmarshal(raw, &history); err != nil {
		return err
	}

	result := validation.New().ValidateHistory(history)
	if err := result.Err(); err != nil {
		return err
	}

	if history == nil {
		history = []models.Entry{}
	}
	*out = history
	return nil
}

// Persist writes the whole state.
func (m *Mirror) Persist(s models.State) error {
	history := s.History
	if history == nil {
		history = []models.Entry{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := m.store.Set(constants.KeyHistory, historyJSON); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	moodJSON, err := json.Marshal(s.Selection)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	if err := m.store.Set(constants.KeyTodayMood, moodJSON); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}

	if err := m.store.Set(constants.KeyTodayNote, []byte(s.Note)); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	logger.Debug("state saved", "entries", len(history), "selected", s.Selection != nil)
	return nil
}
