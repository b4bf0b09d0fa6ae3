package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/julianstephens/moodlit/internal/config"
	"github.com/julianstephens/moodlit/internal/journal"
	"github.com/julianstephens/moodlit/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
	// Out receives command output; nil means color.Output.
	Out io.Writer
	// Now overrides the clock, for tests.
	Now func() time.Time
}

func (c *Context) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return color.Output
}

// load opens an existing store without creating one.
func (c *Context) load() error {
	if err := c.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store %s: %w", c.Store.GetConfigPath(), err)
	}
	return nil
}

// session opens the journal, initializing the store on first use.
func (c *Context) session() (*journal.Session, error) {
	if err := storage.Ensure(c.Store); err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", c.Store.GetConfigPath(), err)
	}
	return journal.Open(c.Store, c.options()...), nil
}

// readSession opens the journal of an already initialized store.
func (c *Context) readSession() (*journal.Session, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return journal.Open(c.Store, c.options()...), nil
}

func (c *Context) options() []journal.Option {
	if c.Now == nil {
		return nil
	}
	return []journal.Option{journal.WithClock(c.Now)}
}
