// Package store holds the latest known snapshot of the user's habits,
// profile, and AI artifacts for the lifetime of an application session. It
// exposes a small set of synchronous mutations, derived read-only queries,
// and listener callbacks for presentation code.
package store

import (
	"math"

	"habitmini/internal/models"
)

// Snapshot is the persisted subset of store state: user identity and the
// habit list. Everything else is session-only and starts at defaults on each
// cold start.
type Snapshot struct {
	User   *models.UserProfile `json:"user"`
	Habits []models.Habit      `json:"habits"`
}

// Snapshotter receives the persisted subset after every mutation. Writes are
// fire-and-forget: a failing Snapshotter never fails the mutation.
type Snapshotter interface {
	SaveSnapshot(Snapshot) error
}

// Listener is called after every mutation, with no arguments; readers pull
// whatever state they need.
type Listener func()

// StreakSummary pairs the weakest current streak across habits with the best
// historical streak.
type StreakSummary struct {
	Current int
	Best    int
}

// Store is created once at application start and passed by reference to the
// UI layer; there is no package-level instance.
//
// Concurrency note:
//   - Store is not safe for concurrent use by multiple goroutines without
//     external synchronization. Mutations are expected to run on the single
//     event loop that owns the store.
type Store struct {
	habits          []models.Habit
	user            *models.UserProfile
	weeklySummary   *models.WeeklySummary
	failureAnalysis *models.FailureAnalysis
	weeklyProgress  *models.WeeklyProgress
	selectedHabitID *int64
	loading         bool
	errMsg          *string

	snapshotter  Snapshotter
	onPersistErr func(error)
	listeners    []Listener
}

// New returns an empty store. snap may be nil, in which case nothing is
// persisted.
func New(snap Snapshotter) *Store {
	return &Store{snapshotter: snap}
}

// OnPersistError installs a handler for snapshot write failures. Without one
// they are silently dropped.
func (s *Store) OnPersistError(fn func(error)) {
	s.onPersistErr = fn
}

// Subscribe registers a listener invoked after every mutation.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// commit persists the {user, habits} subset and notifies listeners. Called
// at the end of every mutation.
func (s *Store) commit() {
	if s.snapshotter != nil {
		if err := s.snapshotter.SaveSnapshot(s.Snapshot()); err != nil && s.onPersistErr != nil {
			s.onPersistErr(err)
		}
	}
	s.notify()
}

func (s *Store) notify() {
	for _, l := range s.listeners {
		l()
	}
}

// Snapshot returns a copy of the persisted subset.
func (s *Store) Snapshot() Snapshot {
	habits := make([]models.Habit, len(s.habits))
	copy(habits, s.habits)
	return Snapshot{User: s.user, Habits: habits}
}

// RestoreSnapshot seeds user and habits from a previously persisted snapshot,
// before any network fetch completes. Session-only fields keep their
// defaults. Listeners are notified; nothing is written back.
func (s *Store) RestoreSnapshot(snap Snapshot) {
	s.user = snap.User
	s.habits = make([]models.Habit, len(snap.Habits))
	copy(s.habits, snap.Habits)
	s.notify()
}

// SetHabits replaces the entire habit collection. The list contents are not
// validated; they are trusted as served.
func (s *Store) SetHabits(habits []models.Habit) {
	s.habits = make([]models.Habit, len(habits))
	copy(s.habits, habits)
	s.commit()
}

// AddHabit appends one habit to the end of the collection. Duplicate ids are
// not checked; reads reflect insertion order.
func (s *Store) AddHabit(h models.Habit) {
	s.habits = append(s.habits, h)
	s.commit()
}

// UpdateHabit merges the non-nil fields of patch into the habit matching id.
// A missing id is a silent no-op, not an error.
func (s *Store) UpdateHabit(id int64, patch models.HabitPatch) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	h := &s.habits[i]
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	if patch.Description != nil {
		h.Description = patch.Description
	}
	if patch.Emoji != nil {
		h.Emoji = *patch.Emoji
	}
	if patch.ReminderTime != nil {
		h.ReminderTime = patch.ReminderTime
	}
	if patch.Frequency != nil {
		h.Frequency = *patch.Frequency
	}
	if patch.TargetDays != nil {
		h.TargetDays = *patch.TargetDays
	}
	if patch.IsActive != nil {
		h.IsActive = *patch.IsActive
	}
	if patch.CurrentStreak != nil {
		h.CurrentStreak = *patch.CurrentStreak
	}
	if patch.BestStreak != nil {
		h.BestStreak = *patch.BestStreak
	}
	if patch.TotalCompletions != nil {
		h.TotalCompletions = *patch.TotalCompletions
	}
	if patch.ProgressPercentage != nil {
		h.ProgressPercentage = *patch.ProgressPercentage
	}
	if patch.IsCompletedToday != nil {
		h.IsCompletedToday = *patch.IsCompletedToday
	}
	s.commit()
}

// RemoveHabit removes the habit matching id. No-op if absent.
func (s *Store) RemoveHabit(id int64) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.habits = append(s.habits[:i], s.habits[i+1:]...)
	s.commit()
}

// CompleteHabit marks the habit completed for today and increments its total
// completions and current streak by one, ahead of server confirmation.
//
// The increment is unconditional: a second call on the same id before the day
// boundary double-increments both counters. Callers wanting once-per-day
// semantics must check IsCompletedToday first. No-op if id is absent.
func (s *Store) CompleteHabit(id int64) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	h := &s.habits[i]
	h.IsCompletedToday = true
	h.TotalCompletions++
	h.CurrentStreak++
	s.commit()
}

// SetUser replaces the user profile wholesale.
func (s *Store) SetUser(u *models.UserProfile) {
	s.user = u
	s.commit()
}

// SetWeeklySummary replaces the weekly summary wholesale.
func (s *Store) SetWeeklySummary(sum *models.WeeklySummary) {
	s.weeklySummary = sum
	s.commit()
}

// SetFailureAnalysis replaces the failure analysis wholesale.
func (s *Store) SetFailureAnalysis(a *models.FailureAnalysis) {
	s.failureAnalysis = a
	s.commit()
}

// SetWeeklyProgress replaces the weekly progress wholesale.
func (s *Store) SetWeeklyProgress(p *models.WeeklyProgress) {
	s.weeklyProgress = p
	s.commit()
}

// SetLoading records the session loading flag.
func (s *Store) SetLoading(v bool) {
	s.loading = v
	s.commit()
}

// SetError records a human-readable error message for UI display. Failure
// detection and classification happen in the API client and UI layers; the
// store only holds the message.
func (s *Store) SetError(msg string) {
	s.errMsg = &msg
	s.commit()
}

// ClearError clears the error slot.
func (s *Store) ClearError() {
	s.errMsg = nil
	s.commit()
}

// SelectHabit records which habit the UI is focused on. Purely advisory.
func (s *Store) SelectHabit(id int64) {
	s.selectedHabitID = &id
	s.commit()
}

// DeselectHabit clears the selection.
func (s *Store) DeselectHabit() {
	s.selectedHabitID = nil
	s.commit()
}

// Habits returns a copy of the habit collection in insertion order.
func (s *Store) Habits() []models.Habit {
	habits := make([]models.Habit, len(s.habits))
	copy(habits, s.habits)
	return habits
}

// Habit returns the habit matching id, if present.
func (s *Store) Habit(id int64) (models.Habit, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return s.habits[i], true
}

func (s *Store) User() *models.UserProfile { return s.user }

func (s *Store) WeeklySummary() *models.WeeklySummary { return s.weeklySummary }

func (s *Store) FailureAnalysis() *models.FailureAnalysis { return s.failureAnalysis }

func (s *Store) WeeklyProgress() *models.WeeklyProgress { return s.weeklyProgress }

func (s *Store) Loading() bool { return s.loading }

// ErrorMessage returns the current error slot, if set.
func (s *Store) ErrorMessage() (string, bool) {
	if s.errMsg == nil {
		return "", false
	}
	return *s.errMsg, true
}

// SelectedHabitID returns the advisory selection, if set.
func (s *Store) SelectedHabitID() (int64, bool) {
	if s.selectedHabitID == nil {
		return 0, false
	}
	return *s.selectedHabitID, true
}

// TodayProgress returns the percentage of habits completed today, rounded to
// the nearest integer. 0 for an empty collection.
func (s *Store) TodayProgress() int {
	if len(s.habits) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.CompletedTodayCount()) / float64(len(s.habits))))
}

// CompletedTodayCount returns how many habits are flagged completed today.
func (s *Store) CompletedTodayCount() int {
	n := 0
	for _, h := range s.habits {
		if h.IsCompletedToday {
			n++
		}
	}
	return n
}

// StreakSummary returns the minimum current streak (the weakest link) and
// the maximum best streak over all habits. Both are 0 for an empty
// collection.
func (s *Store) StreakSummary() StreakSummary {
	if len(s.habits) == 0 {
		return StreakSummary{}
	}
	sum := StreakSummary{Current: s.habits[0].CurrentStreak}
	for _, h := range s.habits {
		if h.CurrentStreak < sum.Current {
			sum.Current = h.CurrentStreak
		}
		if h.BestStreak > sum.Best {
			sum.Best = h.BestStreak
		}
	}
	return sum
}

func (s *Store) indexOf(id int64) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}
