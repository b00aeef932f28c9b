package data

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/export"
)

type DataCmd struct {
	Export DataExportCmd `cmd:"" help:"Write every stored key to a JSON or YAML file."`
	Import DataImportCmd `cmd:"" help:"Load a file written by 'data export'."`
	Clear  DataClearCmd  `cmd:"" help:"Delete all stored data."`
}

type DataExportCmd struct {
	Path string `arg:"" type:"path" help:"Output file; .yaml or .yml selects YAML."`
}

func (c *DataExportCmd) Run(ctx *cli.Context) error {
	out, err := export.Dump(ctx.Background(), ctx.Store, export.FormatFor(c.Path), ctx.Tracker.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Path, out, 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	ctx.Printf("Exported to %s\n", c.Path)
	return nil
}

type DataImportCmd struct {
	Path    string `arg:"" type:"existingfile" help:"File written by 'data export'."`
	Replace bool   `help:"Clear the store before importing."`
	Yes     bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *DataImportCmd) Run(ctx *cli.Context) error {
	in, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}
	if c.Replace && !c.Yes {
		ok, err := ctx.Confirm("Replace all stored data with the contents of "+c.Path+"?", false)
		if err != nil || !ok {
			return err
		}
	}

	ctx.PerformAutomaticBackup()
	keys, err := export.Restore(ctx.Background(), ctx.Store, in, export.FormatFor(c.Path), c.Replace)
	if err != nil {
		return err
	}
	ctx.Printf("Imported %d keys from %s\n", len(keys), c.Path)
	for _, k := range keys {
		ctx.Printf("  %s\n", k)
	}
	return nil
}

type DataClearCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (c *DataClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm("Delete all habits, routines, goals, notes and settings?", false)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Nothing deleted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.ClearAll(ctx.Background()); err != nil {
		return err
	}
	ctx.Println("All data cleared.")
	return nil
}
