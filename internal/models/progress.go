package models

// DayProgress is one day's slice of the weekly breakdown.
type DayProgress struct {
	Date       string  `json:"date"` // YYYY-MM-DD format
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// WeeklyProgress is the per-day breakdown for the active week plus aggregate
// totals. Single most-recent value, replaced wholesale.
type WeeklyProgress struct {
	WeekStart         string        `json:"week_start"` // YYYY-MM-DD format
	WeekEnd           string        `json:"week_end"`   // YYYY-MM-DD format
	Days              []DayProgress `json:"days"`
	TotalCompleted    int           `json:"total_completed"`
	TotalHabits       int           `json:"total_habits"`
	AveragePercentage float64       `json:"average_percentage"`
}
