package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

type HistoryCmd struct {
	Limit int `help:"Show at most this many entries (0 for all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	s, err := ctx.readSession()
	if err != nil {
		return err
	}

	out := ctx.out()
	entries := s.Entries()
	faint := color.New(color.Faint)

	if len(entries) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(out, "No entries yet.")
		return nil
	}

	if c.Limit > 0 && c.Limit < len(entries) {
		entries = entries[:c.Limit]
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, e := range entries {
		note := ""
		if e.HasNote() {
			note = color.New(color.Italic).Sprintf("\"%s\"", e.Note)
		}
		tbl.AddRow(faint.Sprint(strconv.FormatInt(e.ID, 10)), e.Date, e.Mood.Emoji, e.Mood.Name, note)
	}

	fmt.Fprintln(out, tbl)
	_, _ = faint.Fprintf(out, "Total entries: %d\n", s.Len())
	return nil
}
