package models

import "time"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Habit mirrors the habit object returned by the Mini App API. Field names
// and types match the wire format exactly; the client never derives the
// progress fields itself, it only applies the local mutations the store
// defines.
type Habit struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id,omitempty"`
	Name               string    `json:"name"`
	Description        *string   `json:"description,omitempty"`
	Emoji              string    `json:"emoji"`
	ReminderTime       *string   `json:"reminder_time,omitempty"` // HH:MM format
	Frequency          Frequency `json:"frequency"`
	TargetDays         int       `json:"target_days"`
	IsActive           bool      `json:"is_active"`
	CurrentStreak      int       `json:"current_streak"`
	BestStreak         int       `json:"best_streak"`
	TotalCompletions   int       `json:"total_completions"`
	ProgressPercentage float64   `json:"progress_percentage"`
	IsCompletedToday   bool      `json:"is_completed_today"`
	CreatedAt          time.Time `json:"created_at"`
}

// HabitCreate is the payload for creating a habit.
type HabitCreate struct {
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Emoji        string    `json:"emoji"`
	ReminderTime *string   `json:"reminder_time,omitempty"`
	Frequency    Frequency `json:"frequency"`
	TargetDays   int       `json:"target_days"`
}

// HabitPatch carries the fields of a partial habit update. Nil fields are
// left untouched. The same shape serves as the PATCH request body and as the
// argument to Store.UpdateHabit.
type HabitPatch struct {
	Name               *string    `json:"name,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Emoji              *string    `json:"emoji,omitempty"`
	ReminderTime       *string    `json:"reminder_time,omitempty"`
	Frequency          *Frequency `json:"frequency,omitempty"`
	TargetDays         *int       `json:"target_days,omitempty"`
	IsActive           *bool      `json:"is_active,omitempty"`
	CurrentStreak      *int       `json:"current_streak,omitempty"`
	BestStreak         *int       `json:"best_streak,omitempty"`
	TotalCompletions   *int       `json:"total_completions,omitempty"`
	ProgressPercentage *float64   `json:"progress_percentage,omitempty"`
	IsCompletedToday   *bool      `json:"is_completed_today,omitempty"`
}

// HabitList is the response of the habit list endpoint.
type HabitList struct {
	Habits         []Habit `json:"habits"`
	Total          int     `json:"total"`
	CompletedToday int     `json:"completed_today"`
}

// HabitCompleteResult is the server's confirmation of a completion.
type HabitCompleteResult struct {
	Success     bool   `json:"success"`
	NewStreak   int    `json:"new_streak"`
	Message     string `json:"message"`
	IsMilestone bool   `json:"is_milestone"`
}
