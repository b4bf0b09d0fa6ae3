package models

import "fmt"

// Entry is the journal record for a single calendar date.
type Entry struct {
	ID   int64  `json:"id"` // creation time, Unix milliseconds
	Mood Mood   `json:"mood"`
	Date string `json:"date"`
	Note string `json:"note"`
}

func (e *Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("entry id must be positive, got %d", e.ID)
	}
	if e.Date == "" {
		return fmt.Errorf("entry %d has no date", e.ID)
	}
	if err := e.Mood.Validate(); err != nil {
		return fmt.Errorf("entry %d: %w", e.ID, err)
	}
	return nil
}

// HasNote reports whether the entry carries a note.
func (e *Entry) HasNote() bool {
	return e.Note != ""
}
