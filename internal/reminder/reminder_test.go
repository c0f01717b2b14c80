package reminder

import (
	"testing"
	"time"

	"habitmini/internal/models"
)

func habit(id int64, name string, reminderTime string, freq models.Frequency, active, completed bool) models.Habit {
	h := models.Habit{
		ID:               id,
		Name:             name,
		Emoji:            "⏰",
		Frequency:        freq,
		IsActive:         active,
		IsCompletedToday: completed,
	}
	if reminderTime != "" {
		h.ReminderTime = &reminderTime
	}
	return h
}

// a Wednesday
var wednesday = time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

// a Monday
var monday = time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

func TestScheduleSortsByTime(t *testing.T) {
	p := New()
	habits := []models.Habit{
		habit(1, "evening walk", "19:00", models.FrequencyDaily, true, false),
		habit(2, "morning pages", "07:30", models.FrequencyDaily, true, false),
		habit(3, "lunch stretch", "12:15", models.FrequencyDaily, true, true),
	}

	entries := p.Schedule(habits, wednesday)
	if len(entries) != 3 {
		t.Fatalf("Schedule() returned %d entries, want 3", len(entries))
	}
	if entries[0].HabitID != 2 || entries[1].HabitID != 3 || entries[2].HabitID != 1 {
		t.Errorf("entries out of order: %+v", entries)
	}
	if !entries[1].Completed {
		t.Error("completed habit not flagged in schedule")
	}
}

func TestScheduleSkips(t *testing.T) {
	p := New()
	habits := []models.Habit{
		habit(1, "no reminder", "", models.FrequencyDaily, true, false),
		habit(2, "inactive", "08:00", models.FrequencyDaily, false, false),
		habit(3, "bad time", "25:00", models.FrequencyDaily, true, false),
		habit(4, "kept", "08:00", models.FrequencyDaily, true, false),
	}

	entries := p.Schedule(habits, wednesday)
	if len(entries) != 1 || entries[0].HabitID != 4 {
		t.Errorf("Schedule() = %+v, want only habit 4", entries)
	}
}

func TestScheduleWeeklyOnlyOnMonday(t *testing.T) {
	p := New()
	habits := []models.Habit{habit(1, "weekly review", "10:00", models.FrequencyWeekly, true, false)}

	if got := p.Schedule(habits, wednesday); len(got) != 0 {
		t.Errorf("weekly habit scheduled on Wednesday: %+v", got)
	}
	if got := p.Schedule(habits, monday); len(got) != 1 {
		t.Errorf("weekly habit missing on Monday: %+v", got)
	}
}

func TestPendingExcludesPastAndCompleted(t *testing.T) {
	p := New()
	habits := []models.Habit{
		habit(1, "past", "07:00", models.FrequencyDaily, true, false),
		habit(2, "done", "10:00", models.FrequencyDaily, true, true),
		habit(3, "upcoming", "18:00", models.FrequencyDaily, true, false),
	}

	// 09:00
	pending := p.Pending(habits, wednesday)
	if len(pending) != 1 || pending[0].HabitID != 3 {
		t.Errorf("Pending() = %+v, want only habit 3", pending)
	}
}

func TestNextUp(t *testing.T) {
	p := New()
	habits := []models.Habit{
		habit(1, "later", "20:00", models.FrequencyDaily, true, false),
		habit(2, "sooner", "11:00", models.FrequencyDaily, true, false),
	}

	next, ok := p.NextUp(habits, wednesday)
	if !ok {
		t.Fatal("NextUp() ok = false, want true")
	}
	if next.HabitID != 2 {
		t.Errorf("NextUp() = habit %d, want 2", next.HabitID)
	}

	if _, ok := p.NextUp(nil, wednesday); ok {
		t.Error("NextUp() on empty collection ok = true, want false")
	}
}
