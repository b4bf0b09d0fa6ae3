package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/moodlit/internal/models"
)

var (
	happy = models.Mood{ID: 1, Emoji: "😊", Name: "Счастливый", Color: "#FFD700"}
	sad   = models.Mood{ID: 2, Emoji: "😢", Name: "Грустный", Color: "#6495ED"}
)

func hasConflict(result ValidationResult, ct ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

func TestValidateHistory_NoConflicts(t *testing.T) {
	validator := New()

	entries := []models.Entry{
		{ID: 3, Mood: happy, Date: "16 июня 2025", Note: "ok"},
		{ID: 2, Mood: sad, Date: "15 июня 2025"},
	}

	result := validator.ValidateHistory(entries)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got: %s", result.FormatReport())
	}
	if result.Err() != nil {
		t.Errorf("Expected nil error, got %v", result.Err())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("Unexpected report %q", result.FormatReport())
	}
}

func TestValidateHistory_Empty(t *testing.T) {
	result := New().ValidateHistory(nil)
	if result.HasConflicts() {
		t.Error("Expected empty history to be valid")
	}
}

func TestValidateHistory_DuplicateDates(t *testing.T) {
	validator := New()

	entries := []models.Entry{
		{ID: 3, Mood: happy, Date: "15 июня 2025"},
		{ID: 2, Mood: sad, Date: "15 июня 2025"}, // Duplicate
	}

	result := validator.ValidateHistory(entries)
	if !hasConflict(result, ConflictDuplicateDate) {
		t.Fatal("Expected ConflictDuplicateDate conflict type")
	}
	if ids := result.Conflicts[0].EntryIDs; len(ids) != 2 || ids[0] != 3 || ids[1] != 2 {
		t.Errorf("Expected both entry IDs, got %v", ids)
	}
}

func TestValidateHistory_DuplicateIDs(t *testing.T) {
	validator := New()

	entries := []models.Entry{
		{ID: 7, Mood: happy, Date: "16 июня 2025"},
		{ID: 7, Mood: sad, Date: "15 июня 2025"}, // Duplicate
	}

	result := validator.ValidateHistory(entries)
	if !hasConflict(result, ConflictDuplicateID) {
		t.Error("Expected ConflictDuplicateID conflict type")
	}
}

func TestValidateHistory_InvalidEntries(t *testing.T) {
	validator := New()

	entries := []models.Entry{
		{ID: 0, Mood: happy, Date: "16 июня 2025"},             // Missing ID
		{ID: 5, Mood: sad, Date: ""},                           // Missing date
		{ID: 6, Mood: models.Mood{ID: 3}, Date: "1 мая 2025"}, // Nameless mood
	}

	result := validator.ValidateHistory(entries)
	if len(result.Conflicts) != 3 {
		t.Fatalf("Expected 3 conflicts, got %d: %s", len(result.Conflicts), result.FormatReport())
	}
	for _, c := range result.Conflicts {
		if c.Type != ConflictInvalidEntry {
			t.Errorf("Expected ConflictInvalidEntry, got %s", c.Type)
		}
	}

	report := result.FormatReport()
	if !strings.HasPrefix(report, "Conflicts detected:\n") || strings.Count(report, "\n- ") != 3 {
		t.Errorf("Unexpected report:\n%s", report)
	}
	if result.Err() == nil {
		t.Error("Expected joined error")
	}
}
