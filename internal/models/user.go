package models

import "time"

type UserSettings struct {
	AIEnabled           bool   `json:"ai_enabled"`
	NotificationEnabled bool   `json:"notification_enabled"`
	Timezone            string `json:"timezone"`
	Theme               string `json:"theme"` // light, dark, system
}

type UserStats struct {
	TotalHabits       int     `json:"total_habits"`
	ActiveHabits      int     `json:"active_habits"`
	TotalCompletions  int     `json:"total_completions"`
	BestStreak        int     `json:"best_streak"`
	CurrentStreak     int     `json:"current_streak"`
	CompletionRate7d  float64 `json:"completion_rate_7d"`
	CompletionRate30d float64 `json:"completion_rate_30d"`
}

// UserProfile is set once per session from the profile fetch and treated as
// an immutable snapshot; there is no partial-field mutation for it.
type UserProfile struct {
	ID         int64        `json:"id"`
	FirstName  string       `json:"first_name"`
	LastName   *string      `json:"last_name,omitempty"`
	Username   *string      `json:"username,omitempty"`
	Settings   UserSettings `json:"settings"`
	Stats      UserStats    `json:"stats"`
	CreatedAt  time.Time    `json:"created_at"`
	LastActive *time.Time   `json:"last_active,omitempty"`
}

// DisplayName returns the user's preferred display string.
func (u UserProfile) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return "@" + *u.Username
	}
	if u.LastName != nil && *u.LastName != "" {
		return u.FirstName + " " + *u.LastName
	}
	return u.FirstName
}
