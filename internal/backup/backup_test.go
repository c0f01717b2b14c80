package backup

import (
	"os"
	"path/filepath"
	"testing"

	"habitmini/internal/storage"
	"habitmini/internal/store"
)

func newStateFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habitmini.json")
	s := storage.NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := s.SaveSnapshot(store.Snapshot{}); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	return path
}

func TestCreateAndList(t *testing.T) {
	path := newStateFile(t)
	m := NewManager(path)

	dest, err := m.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if filepath.Ext(dest) != ".json" {
		t.Errorf("backup extension = %q, want .json", filepath.Ext(dest))
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("List() returned %d backups, want 1", len(backups))
	}
	if backups[0].Path != dest {
		t.Errorf("List() path = %q, want %q", backups[0].Path, dest)
	}
	if backups[0].Size == 0 {
		t.Error("backup size is 0")
	}
}

func TestCreateMissingState(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := m.Create(); err == nil {
		t.Error("Create() without state file succeeded, want error")
	}
}

func TestListEmptyDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "habitmini.json"))
	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List() = %d backups, want 0", len(backups))
	}
}

func TestCreateUniqueNames(t *testing.T) {
	path := newStateFile(t)
	m := NewManager(path)

	// Two backups within the same second must not collide
	first, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("backup names collided: %q", first)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	path := newStateFile(t)
	m := NewManager(path)

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	dest, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	// Clobber the state file, then restore
	if err := os.WriteFile(path, []byte(`{"version":1,"slots":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(dest); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}

	restored, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != string(original) {
		t.Error("restored state differs from backed-up state")
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	path := newStateFile(t)
	m := NewManager(path)

	bad := filepath.Join(t.TempDir(), "habitmini-20260101-000000.json")
	if err := os.WriteFile(bad, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(bad); err == nil {
		t.Error("Restore() of corrupt backup succeeded, want error")
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	m := NewManager(newStateFile(t))
	if err := m.Restore(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Restore() of missing backup succeeded, want error")
	}
}
