package cli

import (
	"fmt"
)

type SelectCmd struct {
	Mood string  `arg:"" help:"Mood ID (1-10), name or emoji."`
	Note *string `help:"Set today's note before recording the mood."`
}

func (c *SelectCmd) Run(ctx *Context) error {
	mood, err := parseMood(c.Mood)
	if err != nil {
		return err
	}

	s, err := ctx.session()
	if err != nil {
		return err
	}

	if c.Note != nil {
		if err := s.SetNote(*c.Note); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
	}

	entry, err := s.SelectMood(mood)
	if err != nil {
		return fmt.Errorf("failed to save mood: %w", err)
	}

	fmt.Fprintf(ctx.out(), "%s: %s (id %d)\n", entry.Date, mood, entry.ID)
	return nil
}

type NoteCmd struct {
	Text string `arg:"" help:"Note text; an empty string clears it."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}
	if err := s.SetNote(c.Text); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	fmt.Fprintln(ctx.out(), "Note saved")
	return nil
}
