package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

func setupStore(t *testing.T) (string, *sqlite.Store) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitual.db")
	store := sqlite.New(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Set(context.Background(), constants.KeyHabits, []byte(`[{"id":"h1","name":"Run"}]`)); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return dbPath, store
}

func newTestManager(dbPath string) (*Manager, *time.Time) {
	now := time.Date(2024, 1, 22, 9, 30, 0, 0, time.Local)
	mgr := NewManager(dbPath)
	mgr.now = func() time.Time { return now }
	return mgr, &now
}

func TestCreate(t *testing.T) {
	dbPath, _ := setupStore(t)
	mgr, _ := newTestManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if want := filepath.Join(mgr.Dir(), "habitual-20240122-093000.db"); path != want {
		t.Errorf("expected backup at %s, got %s", want, path)
	}

	snap := sqlite.New(path)
	if err := snap.Load(); err != nil {
		t.Fatalf("backup is not a loadable store: %v", err)
	}
	defer snap.Close()

	raw, err := snap.Get(context.Background(), constants.KeyHabits)
	if err != nil {
		t.Fatalf("failed to read habits from backup: %v", err)
	}
	if string(raw) != `[{"id":"h1","name":"Run"}]` {
		t.Errorf("unexpected habits in backup: %s", raw)
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr, _ := newTestManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestUniqueNamesWithinSameSecond(t *testing.T) {
	dbPath, _ := setupStore(t)
	mgr, _ := newTestManager(dbPath)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		path, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
		name := filepath.Base(path)
		if seen[name] {
			t.Errorf("duplicate backup filename: %s", name)
		}
		seen[name] = true
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 5 {
		t.Errorf("expected 5 backups, got %d", len(backups))
	}
}

func TestRotation(t *testing.T) {
	dbPath, _ := setupStore(t)
	mgr, now := newTestManager(dbPath)

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
		*now = now.Add(time.Minute)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i].Timestamp.Before(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at %d", i)
		}
	}
	oldest := time.Date(2024, 1, 22, 9, 35, 0, 0, time.Local)
	if !backups[len(backups)-1].Timestamp.Equal(oldest) {
		t.Errorf("expected oldest kept backup at %v, got %v", oldest, backups[len(backups)-1].Timestamp)
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dbPath, _ := setupStore(t)
	mgr, _ := newTestManager(dbPath)

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for _, name := range []string{"notes.txt", "habitual-latest.db", "other-20240101-000000.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup size is 0")
	}
}

func TestListWithoutDirectory(t *testing.T) {
	mgr, _ := newTestManager(filepath.Join(t.TempDir(), "habitual.db"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestore(t *testing.T) {
	dbPath, store := setupStore(t)
	mgr, now := newTestManager(dbPath)
	ctx := context.Background()

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Set(ctx, constants.KeyHabits, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	store.Close()

	*now = now.Add(time.Hour)
	previous, err := mgr.Restore(backupPath)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if previous == "" {
		t.Error("expected a snapshot of the database before restoring")
	}

	restored := sqlite.New(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("failed to load restored store: %v", err)
	}
	defer restored.Close()

	raw, err := restored.Get(ctx, constants.KeyHabits)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `[{"id":"h1","name":"Run"}]` {
		t.Errorf("restore did not bring back habits, got %s", raw)
	}

	backups, _ := mgr.List()
	if len(backups) != 2 {
		t.Errorf("expected 2 backups after restore, got %d", len(backups))
	}
}

func TestRestoreRejectsInvalidFile(t *testing.T) {
	dbPath, _ := setupStore(t)
	mgr, _ := newTestManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(bogus); err == nil {
		t.Error("expected error restoring an invalid backup")
	}
	if _, err := mgr.Restore(filepath.Join(t.TempDir(), "none.db")); err == nil {
		t.Error("expected error restoring a missing backup")
	}
}
