package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"habitmini/internal/api"
	"habitmini/internal/backup"
	"habitmini/internal/logger"
	"habitmini/internal/models"
	"habitmini/internal/reminder"
	"habitmini/internal/storage"
	"habitmini/internal/store"
)

const requestTimeout = 30 * time.Second

type Context struct {
	Store    *store.Store
	Storage  storage.Provider
	API      *api.Client
	Reminder *reminder.Projector
}

// LoadState opens storage and seeds the store from the persisted snapshot.
// A missing snapshot is fine: the store just starts empty.
func (c *Context) LoadState() error {
	if err := c.Storage.Load(); err != nil {
		return err
	}
	snap, ok, err := c.Storage.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if ok {
		c.Store.RestoreSnapshot(snap)
	}
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Storage.(*storage.PostgresStore); ok {
		// Nothing local to copy
		return
	}
	mgr := backup.NewManager(c.Storage.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func reqContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// findHabit resolves a habit by numeric id or by case-insensitive name.
func findHabit(s *store.Store, idOrName string) (models.Habit, error) {
	if id, err := strconv.ParseInt(idOrName, 10, 64); err == nil {
		if h, ok := s.Habit(id); ok {
			return h, nil
		}
		return models.Habit{}, fmt.Errorf("habit not found: %s", idOrName)
	}

	want := strings.ToLower(strings.TrimSpace(idOrName))
	var matches []models.Habit
	for _, h := range s.Habits() {
		if strings.ToLower(h.Name) == want {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("habit not found: %s", idOrName)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("multiple habits named %q, use the numeric id", idOrName)
	}
}

func checkmark(done bool) string {
	if done {
		return "✓"
	}
	return "·"
}

// renderBar draws a fixed-width progress bar for percentages in [0,100].
func renderBar(percentage float64, width int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := int(percentage / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
