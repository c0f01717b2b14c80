package cli

import (
	"fmt"
	"time"
)

// StatsCmd prints today's progress, the streak summary, and whatever profile
// stats the last sync brought in.
type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	progress := ctx.Store.TodayProgress()
	streaks := ctx.Store.StreakSummary()

	fmt.Printf("Today    %s %d%% (%d/%d)\n", renderBar(float64(progress), 20), progress, ctx.Store.CompletedTodayCount(), len(habits))
	fmt.Printf("Streaks  current %d · best %d\n", streaks.Current, streaks.Best)

	if next, ok := ctx.Reminder.NextUp(habits, time.Now()); ok {
		fmt.Printf("Next up  %s %s at %s\n", next.Emoji, next.Name, next.Time)
	}

	user := ctx.Store.User()
	if user == nil {
		fmt.Println("\nRun 'habitmini sync' for lifetime stats.")
		return nil
	}

	fmt.Printf("\nLifetime stats for %s\n", user.DisplayName())
	fmt.Printf("  habits: %d (%d active)\n", user.Stats.TotalHabits, user.Stats.ActiveHabits)
	fmt.Printf("  completions: %d\n", user.Stats.TotalCompletions)
	fmt.Printf("  completion rate: %.0f%% (7d) · %.0f%% (30d)\n", user.Stats.CompletionRate7d, user.Stats.CompletionRate30d)
	return nil
}
