package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/storage"
	"github.com/julianstephens/moodlit/internal/validation"
)

// ValidateCmd checks the saved history. A history that fails these checks is
// ignored when the journal is opened.
type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	raw, err := ctx.Store.Get(constants.KeyHistory)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintln(ctx.out(), "No history saved yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("history is not valid JSON: %w", err)
	}

	result := validation.New().ValidateHistory(entries)
	fmt.Fprint(ctx.out(), result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("found %d conflicts in %d entries", len(result.Conflicts), len(entries))
	}
	fmt.Fprintf(ctx.out(), "\n%d entries OK\n", len(entries))
	return nil
}
