package models

import (
	"fmt"
	"strings"
)

// Mood is one selectable mood from the catalog.
type Mood struct {
	ID    int    `json:"id"`
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
	Color string `json:"color"` // #RRGGBB
}

func (m Mood) Validate() error {
	if m.ID < 1 {
		return fmt.Errorf("mood id must be positive, got %d", m.ID)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("mood %d has no name", m.ID)
	}
	return nil
}

func (m Mood) String() string {
	return m.Emoji + " " + m.Name
}
