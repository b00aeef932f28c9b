package backups

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

// ErrUnsupportedStore is returned when the active store is not a SQLite file.
var ErrUnsupportedStore = errors.New("backups are only available for SQLite stores")

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Snapshot the database now."`
	List    BackupListCmd    `cmd:"" default:"1" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Replace the database with a backup."`
}

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil, ErrUnsupportedStore
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	list, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(list) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(list), constants.MaxBackups)
	for _, b := range list {
		ctx.Printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or file name of the backup to restore."`
	Yes        bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	path, err := c.locate(mgr)
	if err != nil {
		return err
	}

	if !c.Yes {
		ctx.Println("⚠️  This will replace your current database with the backup.")
		ctx.Println("   Close any running habitual TUI before restoring.")
		ok, err := ctx.Confirm("Restore from "+filepath.Base(path)+"?", false)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		ctx.Printf("Warning: failed to close database connection: %v\n", err)
	}
	previous, err := mgr.Restore(path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to reopen database: %w", err)
	}

	ctx.Println("✓ Database restored.")
	if previous != "" {
		ctx.Printf("  Previous database saved as %s\n", filepath.Base(previous))
	}
	return nil
}

// locate resolves the argument as a path first, then as a name in the
// backup directory.
func (c *BackupRestoreCmd) locate(mgr *backup.Manager) (string, error) {
	if _, err := os.Stat(c.BackupFile); err == nil {
		return filepath.Abs(c.BackupFile)
	}
	if !filepath.IsAbs(c.BackupFile) {
		candidate := filepath.Join(mgr.Dir(), c.BackupFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("backup file not found: tried %s and %s", c.BackupFile, mgr.Dir())
}
