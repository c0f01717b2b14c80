// Package reminder projects habit reminder times into a daily schedule. It is
// a pure function of the habit collection: nothing here fires notifications,
// the CLI and TUI just render the projection.
package reminder

import (
	"sort"
	"time"

	"habitmini/internal/models"
)

type Entry struct {
	HabitID   int64
	Name      string
	Emoji     string
	Time      string // HH:MM
	Completed bool
}

type Projector struct{}

func New() *Projector {
	return &Projector{}
}

// Schedule returns today's reminder entries in chronological order. Habits
// without a reminder time, inactive habits, and habits off-frequency for the
// given date are skipped. Completed habits stay in the schedule so the view
// can cross them off.
func (p *Projector) Schedule(habits []models.Habit, date time.Time) []Entry {
	var entries []Entry
	for _, h := range habits {
		if !h.IsActive || h.ReminderTime == nil {
			continue
		}
		if !dueOn(h, date) {
			continue
		}
		if _, err := parseTime(*h.ReminderTime); err != nil {
			continue
		}
		entries = append(entries, Entry{
			HabitID:   h.ID,
			Name:      h.Name,
			Emoji:     h.Emoji,
			Time:      *h.ReminderTime,
			Completed: h.IsCompletedToday,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Time != entries[j].Time {
			return entries[i].Time < entries[j].Time
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// Pending returns the schedule entries whose time is still ahead of now and
// whose habit has not been completed today.
func (p *Projector) Pending(habits []models.Habit, now time.Time) []Entry {
	nowMin := now.Hour()*60 + now.Minute()

	var pending []Entry
	for _, e := range p.Schedule(habits, now) {
		if e.Completed {
			continue
		}
		min, err := parseTime(e.Time)
		if err != nil {
			continue
		}
		if min >= nowMin {
			pending = append(pending, e)
		}
	}
	return pending
}

func dueOn(h models.Habit, date time.Time) bool {
	switch h.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		// Weekly habits remind on Mondays
		return date.Weekday() == time.Monday
	case models.FrequencyCustom:
		return true
	default:
		return false
	}
}

func parseTime(timeStr string) (int, error) {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// NextUp returns the earliest pending reminder, if any.
func (p *Projector) NextUp(habits []models.Habit, now time.Time) (Entry, bool) {
	pending := p.Pending(habits, now)
	if len(pending) == 0 {
		return Entry{}, false
	}
	return pending[0], true
}
