package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/moodlit/internal/cli"
	"github.com/julianstephens/moodlit/internal/config"
	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/errors"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store path: *.json for a JSON file, a directory ending in / or *.kv for diskv, anything else for SQLite."`
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Init     cli.InitCmd     `cmd:"" help:"Initialize moodlit storage."`
	Moods    cli.MoodsCmd    `cmd:"" help:"List the moods you can pick."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's mood and note."`
	History  cli.HistoryCmd  `cmd:"" help:"Show past entries, most recent first."`
	Select   cli.SelectCmd   `cmd:"" help:"Record today's mood."`
	Note     cli.NoteCmd     `cmd:"" help:"Set today's note."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete an entry by ID."`
	Clear    cli.ClearCmd    `cmd:"" help:"Remove today's entry and reset mood and note."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the saved history for problems."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mini mood diary: one mood and a note per day"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(config.Overrides{
		ConfigFile: CLI.Config,
		StorePath:  CLI.Store,
		Debug:      CLI.Debug,
	})
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:  cfg.Debug,
		Dir:    cfg.LogDir,
		Stderr: ctx.Command() != "tui",
	}); err != nil {
		errors.Fatal(err)
	}
	logger.Debug("starting", "command", ctx.Command(), "store", cfg.StorePath, "config", cfg.File)

	store := storage.New(cfg.StorePath)
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
