package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"habitmini/internal/models"
	"habitmini/internal/store"
)

// Postgres is exercised only against a live server, so its provider has no
// unit tests here; the shared round-trip behavior is covered by the JSON and
// SQLite providers, which share the snapshot document shape.

func sampleSnapshot() store.Snapshot {
	desc := "morning pages"
	return store.Snapshot{
		User: &models.UserProfile{ID: 42, FirstName: "Ada"},
		Habits: []models.Habit{
			{
				ID:               1,
				Name:             "journal",
				Description:      &desc,
				Emoji:            "📓",
				Frequency:        models.FrequencyDaily,
				IsActive:         true,
				CurrentStreak:    3,
				BestStreak:       9,
				TotalCompletions: 27,
			},
		},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitmini.json")

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	want := sampleSnapshot()
	if err := s.SaveSnapshot(want); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	// Reload from disk into a fresh provider
	s2 := NewJSONStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	got, ok, err := s2.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if !ok {
		t.Fatal("LoadSnapshot() ok = false, want true")
	}
	if len(got.Habits) != 1 || got.Habits[0].Name != "journal" {
		t.Errorf("habits not round-tripped: %+v", got.Habits)
	}
	if got.User == nil || got.User.ID != 42 {
		t.Errorf("user not round-tripped: %+v", got.User)
	}
}

func TestJSONStoreEmptySlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitmini.json")

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	_, ok, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if ok {
		t.Error("LoadSnapshot() ok = true on a fresh store, want false")
	}
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitmini.json")

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("first Init() failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init() succeeded, want error")
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))
	err := s.Load()
	if err == nil {
		t.Fatal("Load() on missing file succeeded, want error")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Load() error = %q, want mention of init", err)
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitmini.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err == nil {
		t.Error("Load() on corrupt file succeeded, want error")
	}
}

func TestJSONStoreUnloadedGuards(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "habitmini.json"))

	if err := s.SaveSnapshot(store.Snapshot{}); err == nil {
		t.Error("SaveSnapshot() before Load succeeded, want error")
	}
	if _, _, err := s.LoadSnapshot(); err == nil {
		t.Error("LoadSnapshot() before Load succeeded, want error")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitmini.db")

	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	want := sampleSnapshot()
	if err := s.SaveSnapshot(want); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	s2 := NewSQLiteStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer s2.Close()

	got, ok, err := s2.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if !ok {
		t.Fatal("LoadSnapshot() ok = false, want true")
	}
	if len(got.Habits) != 1 || got.Habits[0].BestStreak != 9 {
		t.Errorf("habits not round-tripped: %+v", got.Habits)
	}
}

func TestSQLiteStoreOverwritesSlot(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "habitmini.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer s.Close()

	if err := s.SaveSnapshot(sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(store.Snapshot{}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.LoadSnapshot()
	if err != nil || !ok {
		t.Fatalf("LoadSnapshot() = ok %v, err %v", ok, err)
	}
	if len(got.Habits) != 0 || got.User != nil {
		t.Errorf("second save did not replace first: %+v", got)
	}
}

func TestSQLiteStoreEmptySlot(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "habitmini.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer s.Close()

	_, ok, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if ok {
		t.Error("LoadSnapshot() ok = true on a fresh store, want false")
	}
}

func TestSQLiteStoreLoadMissingFile(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "nope.db"))
	if err := s.Load(); err == nil {
		t.Error("Load() on missing file succeeded, want error")
	}
}
