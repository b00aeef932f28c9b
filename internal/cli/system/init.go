package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/export"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/jsonfile"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Delete the existing data before initializing."`
	Source string `help:"Store path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if c.Force && !fileBacked(ctx.Store) {
		if err := ctx.Store.Clear(ctx.Background()); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}
	ctx.Printf("Initialized habitual storage at: %s\n", ctx.Store.GetConfigPath())

	if err := c.writeConfig(ctx); err != nil {
		return err
	}

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		n, err := c.copyFrom(ctx)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Printf("Copied %d keys.\n", n)
	}
	return nil
}

// reset removes the database file of file-backed stores. Server stores are
// cleared after Init instead.
func (c *InitCmd) reset(ctx *cli.Context) error {
	if !fileBacked(ctx.Store) {
		return nil
	}
	path := ctx.Store.GetConfigPath()
	if c.Source != "" {
		abs, err := filepath.Abs(c.Source)
		if err == nil && abs == path {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// writeConfig creates the config file on first run. An existing file is
// left alone.
func (c *InitCmd) writeConfig(ctx *cli.Context) error {
	if ctx.ConfigPath == "" {
		return nil
	}
	existing, err := config.Read(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if existing != (config.File{}) {
		return nil
	}

	f := config.File{Timezone: "Local"}
	if fileBacked(ctx.Store) {
		f.Store = ctx.Store.GetConfigPath()
	}
	if err := config.Write(ctx.ConfigPath, f); err != nil {
		return err
	}
	ctx.Printf("Wrote config file: %s\n", ctx.ConfigPath)
	return nil
}

func (c *InitCmd) copyFrom(ctx *cli.Context) (int, error) {
	src, err := cli.NewStore(c.Source)
	if err != nil {
		return 0, err
	}
	defer src.Close()
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source store: %w", err)
	}

	dump, err := export.Dump(ctx.Background(), src, export.FormatJSON, ctx.Tracker.Now())
	if err != nil {
		return 0, err
	}
	keys, err := export.Restore(ctx.Background(), ctx.Store, dump, export.FormatJSON, true)
	return len(keys), err
}

func fileBacked(s storage.Provider) bool {
	switch s.(type) {
	case *sqlite.Store, *jsonfile.Store:
		return true
	}
	return false
}
