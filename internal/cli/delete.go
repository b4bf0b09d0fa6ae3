package cli

import (
	"fmt"
)

type DeleteCmd struct {
	ID int64 `arg:"" help:"Entry ID, as shown by 'moodlit history'."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}

	removed, err := s.DeleteEntry(c.ID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if !removed {
		fmt.Fprintf(ctx.out(), "No entry with id %d\n", c.ID)
		return nil
	}
	fmt.Fprintf(ctx.out(), "Deleted entry %d\n", c.ID)
	return nil
}

type ClearCmd struct{}

func (c *ClearCmd) Run(ctx *Context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}
	if err := s.ClearToday(); err != nil {
		return fmt.Errorf("failed to clear today: %w", err)
	}
	fmt.Fprintf(ctx.out(), "Cleared %s\n", s.Today())
	return nil
}
