package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"habitmini/internal/models"
	"habitmini/internal/reminder"
	"habitmini/internal/storage"
	"habitmini/internal/store"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.json")

	provider := storage.NewJSONStore(path)
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to initialize storage: %v", err)
	}

	return &Context{
		Store:    store.New(provider),
		Storage:  provider,
		Reminder: reminder.New(),
	}
}

func TestFindHabitByID(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Store.SetHabits([]models.Habit{
		{ID: 1, Name: "Read"},
		{ID: 2, Name: "Run"},
	})

	h, err := findHabit(ctx.Store, "2")
	if err != nil {
		t.Fatalf("findHabit(\"2\") failed: %v", err)
	}
	if h.Name != "Run" {
		t.Errorf("findHabit(\"2\").Name = %q, want Run", h.Name)
	}
}

func TestFindHabitByNameCaseInsensitive(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Store.SetHabits([]models.Habit{{ID: 1, Name: "Morning Run"}})

	h, err := findHabit(ctx.Store, "morning run")
	if err != nil {
		t.Fatalf("findHabit by name failed: %v", err)
	}
	if h.ID != 1 {
		t.Errorf("findHabit ID = %d, want 1", h.ID)
	}
}

func TestFindHabitNotFound(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Store.SetHabits([]models.Habit{{ID: 1, Name: "Read"}})

	if _, err := findHabit(ctx.Store, "99"); err == nil {
		t.Error("findHabit(\"99\") succeeded, want error")
	}
	if _, err := findHabit(ctx.Store, "nope"); err == nil {
		t.Error("findHabit(\"nope\") succeeded, want error")
	}
}

func TestFindHabitAmbiguousName(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Store.SetHabits([]models.Habit{
		{ID: 1, Name: "Walk"},
		{ID: 2, Name: "walk"},
	})

	_, err := findHabit(ctx.Store, "walk")
	if err == nil {
		t.Fatal("findHabit with ambiguous name succeeded, want error")
	}
	if !strings.Contains(err.Error(), "multiple") {
		t.Errorf("error = %q, want mention of multiple matches", err)
	}
}

func TestLoadStateSeedsStore(t *testing.T) {
	ctx := setupTestContext(t)

	// Persist through one store, reload into a fresh one
	ctx.Store.SetHabits([]models.Habit{{ID: 1, Name: "Read", CurrentStreak: 3}})

	fresh := &Context{
		Store:    store.New(ctx.Storage),
		Storage:  ctx.Storage,
		Reminder: reminder.New(),
	}
	if err := fresh.LoadState(); err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}

	habits := fresh.Store.Habits()
	if len(habits) != 1 || habits[0].CurrentStreak != 3 {
		t.Errorf("restored habits = %+v", habits)
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		percentage float64
		width      int
		wantFilled int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{150, 10, 10},
		{-5, 10, 0},
	}

	for _, tt := range tests {
		bar := renderBar(tt.percentage, tt.width)
		filled := strings.Count(bar, "█")
		if filled != tt.wantFilled {
			t.Errorf("renderBar(%v, %d) filled = %d, want %d", tt.percentage, tt.width, filled, tt.wantFilled)
		}
	}
}

func TestDebugStatePathCmd(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &DebugStatePathCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("debug state-path command failed: %v", err)
	}
}

func TestDebugDumpStateCmd_NoSnapshot(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &DebugDumpStateCmd{}
	err := cmd.Run(ctx)
	if err == nil {
		t.Error("debug dump-state should fail when nothing is persisted")
	}
}

func TestDebugDumpHabitCmd(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Store.SetHabits([]models.Habit{{ID: 1, Name: "Read"}})

	cmd := &DebugDumpHabitCmd{Habit: "1"}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("debug dump-habit command failed: %v", err)
	}

	missing := &DebugDumpHabitCmd{Habit: "42"}
	if err := missing.Run(ctx); err == nil {
		t.Error("debug dump-habit should fail for a missing habit")
	}
}
