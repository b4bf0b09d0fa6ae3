// Package moods holds the fixed catalog of selectable moods.
package moods

import (
	"strconv"
	"strings"

	"github.com/julianstephens/moodlit/internal/models"
)

var catalog = [...]models.Mood{
	{ID: 1, Emoji: "😊", Name: "Счастливый", Color: "#FFD700"},
	{ID: 2, Emoji: "😢", Name: "Грустный", Color: "#6495ED"},
	{ID: 3, Emoji: "😡", Name: "Злой", Color: "#DC143C"},
	{ID: 4, Emoji: "😴", Name: "Уставший", Color: "#808080"},
	{ID: 5, Emoji: "😃", Name: "Восторг", Color: "#32CD32"},
	{ID: 6, Emoji: "😰", Name: "Тревожный", Color: "#8A2BE2"},
	{ID: 7, Emoji: "😎", Name: "Крутой", Color: "#00CED1"},
	{ID: 8, Emoji: "🥰", Name: "Влюблённый", Color: "#FF69B4"},
	{ID: 9, Emoji: "🤔", Name: "Задумчивый", Color: "#D2691E"},
	{ID: 10, Emoji: "😇", Name: "Невинный", Color: "#87CEEB"},
}

// Count is the number of moods in the catalog.
const Count = len(catalog)

// All returns the catalog in display order. The slice is a copy.
func All() []models.Mood {
	out := make([]models.Mood, len(catalog))
	copy(out, catalog[:])
	return out
}

// ByID returns the mood with the given id.
func ByID(id int) (models.Mood, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return models.Mood{}, false
}

// Lookup resolves a mood from user input: either its numeric id or its name
// (case-insensitive).
func Lookup(s string) (models.Mood, bool) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		return ByID(id)
	}
	for _, m := range catalog {
		if strings.EqualFold(m.Name, s) || m.Emoji == s {
			return m, true
		}
	}
	return models.Mood{}, false
}
