package cli

import (
	"fmt"
	"time"

	"habitmini/internal/constants"
)

// WeekCmd fetches and renders the per-day weekly breakdown.
type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	rctx, cancel := reqContext()
	defer cancel()

	wp, err := ctx.API.WeeklyProgress(rctx)
	if err != nil {
		return fmt.Errorf("failed to fetch weekly progress: %w", err)
	}
	ctx.Store.SetWeeklyProgress(&wp)

	fmt.Printf("Week %s – %s\n\n", wp.WeekStart, wp.WeekEnd)
	for _, day := range wp.Days {
		label := day.Date
		if d, err := time.Parse(constants.DateFormat, day.Date); err == nil {
			label = d.Weekday().String()[:3]
		}
		fmt.Printf("%s  %s %3.0f%% (%d/%d)\n", label, renderBar(day.Percentage, 20), day.Percentage, day.Completed, day.Total)
	}
	fmt.Printf("\nAverage %.0f%% · %d completions across %d habits\n", wp.AveragePercentage, wp.TotalCompleted, wp.TotalHabits)
	return nil
}
