package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/moods"
)

type MoodsCmd struct{}

func (c *MoodsCmd) Run(ctx *Context) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), "", bold.Sprint("Mood"), bold.Sprint("Color"))
	for _, m := range moods.All() {
		tbl.AddRow(strconv.Itoa(m.ID), m.Emoji, m.Name, m.Color)
	}
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(ctx.out(), tbl)
	return err
}

// parseMood resolves a mood argument given as an ID, a name or an emoji.
func parseMood(s string) (models.Mood, error) {
	m, ok := moods.Lookup(s)
	if !ok {
		return models.Mood{}, fmt.Errorf("unknown mood %q, run 'moodlit moods' for the list", s)
	}
	return m, nil
}
