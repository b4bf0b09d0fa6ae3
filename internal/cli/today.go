package cli

import (
	"fmt"

	"github.com/fatih/color"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	s, err := ctx.readSession()
	if err != nil {
		return err
	}

	out := ctx.out()
	faint := color.New(color.Faint)

	_, _ = color.New(color.Bold, color.Underline).Fprintln(out, s.Today())

	sel := s.Selection()
	if sel == nil {
		_, _ = faint.Fprintln(out, "No mood selected yet")
	} else {
		fmt.Fprintf(out, "%s %s\n", sel.Emoji, sel.Name)
	}

	if note := s.Note(); note != "" {
		_, _ = color.New(color.Italic).Fprintf(out, "\"%s\"\n", note)
	}
	return nil
}
