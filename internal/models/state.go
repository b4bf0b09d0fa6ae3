package models

// State is everything the journal keeps between sessions.
type State struct {
	History   []Entry
	Selection *Mood // nil when nothing is selected today
	Note      string
}
