package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/moodlit/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidEntry  ConflictType = "invalid_entry"
	ConflictDuplicateDate ConflictType = "duplicate_date"
	ConflictDuplicateID   ConflictType = "duplicate_id"
)

// Conflict is one problem found in a saved history.
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string  // entry date (if applicable)
	EntryIDs    []int64 // IDs of entries involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Err joins the conflicts into a single error, nil when there are none.
func (vr *ValidationResult) Err() error {
	errs := make([]error, 0, len(vr.Conflicts))
	for _, c := range vr.Conflicts {
		errs = append(errs, errors.New(c.Description))
	}
	return errors.Join(errs...)
}

// Validator checks journal histories.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHistory checks that every entry is well formed and that no two
// entries share a date or an ID.
func (v *Validator) ValidateHistory(entries []models.Entry) ValidationResult {
	var result ValidationResult

	byDate := make(map[string]int64, len(entries))
	byID := make(map[int64]bool, len(entries))

	for i := range entries {
		e := &entries[i]

		if err := e.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidEntry,
				Description: fmt.Sprintf("entry %d is invalid: %v", i, err),
				Date:        e.Date,
				EntryIDs:    []int64{e.ID},
			})
			continue
		}

		if prev, ok := byDate[e.Date]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateDate,
				Description: fmt.Sprintf("entries %d and %d share the date %s", prev, e.ID, e.Date),
				Date:        e.Date,
				EntryIDs:    []int64{prev, e.ID},
			})
		} else {
			byDate[e.Date] = e.ID
		}

		if byID[e.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("id %d is used by more than one entry", e.ID),
				Date:        e.Date,
				EntryIDs:    []int64{e.ID},
			})
		}
		byID[e.ID] = true
	}

	return result
}
