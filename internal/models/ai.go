package models

import "time"

// WeeklySummary is a server-generated report for the current week. It is a
// single most-recent value, superseded entirely by each refresh.
type WeeklySummary struct {
	ID        *int64 `json:"id,omitempty"`
	WeekStart string `json:"week_start"` // YYYY-MM-DD format
	WeekEnd   string `json:"week_end"`   // YYYY-MM-DD format

	TotalHabits    int     `json:"total_habits"`
	CompletedCount int     `json:"completed_count"`
	SkippedCount   int     `json:"skipped_count"`
	BestStreak     int     `json:"best_streak"`
	CompletionRate float64 `json:"completion_rate"`

	AISummary           string   `json:"ai_summary"`
	MotivationalMessage string   `json:"motivational_message"`
	Tips                []string `json:"tips"`

	GeneratedAt time.Time `json:"generated_at"`
	IsCached    bool      `json:"is_cached"`
	ShareText   string    `json:"share_text"`
}

// FailurePattern is one recurring skip pattern found by the analysis.
type FailurePattern struct {
	DayOfWeek string  `json:"day_of_week"`
	TimeOfDay *string `json:"time_of_day,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Frequency int     `json:"frequency"`
}

// Strategy is one suggested counter-measure, ordered by the server.
type Strategy struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	ActionSteps            []string `json:"action_steps"`
	Difficulty             string   `json:"difficulty"` // easy, medium, hard
	EstimatedEffectiveness int      `json:"estimated_effectiveness"`
}

// FailureAnalysis is optionally scoped to one habit; replaced wholesale.
type FailureAnalysis struct {
	ID        *int64  `json:"id,omitempty"`
	HabitID   *int64  `json:"habit_id,omitempty"`
	HabitName *string `json:"habit_name,omitempty"`

	FailureCount   int              `json:"failure_count"`
	FailureRate    float64          `json:"failure_rate"`
	CommonPatterns []FailurePattern `json:"common_patterns"`
	SkipReasons    []string         `json:"skip_reasons"`

	EmpatheticMessage string     `json:"empathetic_message"`
	RootCauses        []string   `json:"root_causes"`
	Strategies        []Strategy `json:"strategies"`

	GeneratedAt time.Time `json:"generated_at"`
	IsCached    bool      `json:"is_cached"`
}

// AIAdvice is a one-shot piece of advice for a user-supplied context.
type AIAdvice struct {
	Advice     string  `json:"advice"`
	Category   string  `json:"category"` // motivation, strategy, reminder
	Confidence float64 `json:"confidence"`
	IsCached   bool    `json:"is_cached"`
}

// HabitSuggestion is the AI's proposal for a new habit.
type HabitSuggestion struct {
	SuggestedName  string  `json:"suggested_name"`
	SuggestedEmoji string  `json:"suggested_emoji"`
	SuggestedTime  *string `json:"suggested_time,omitempty"`
	Category       string  `json:"category"`
	Reasoning      string  `json:"reasoning"`
}

type ChatMessage struct {
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatResponse struct {
	Message       string   `json:"message"`
	Suggestions   []string `json:"suggestions"`
	RelatedHabits []int64  `json:"related_habits"`
}
