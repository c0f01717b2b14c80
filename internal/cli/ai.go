package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"habitmini/internal/models"
)

// SummaryCmd fetches the AI weekly summary.
type SummaryCmd struct {
	Share bool `help:"Print the share text instead of the full report."`
}

func (c *SummaryCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	rctx, cancel := reqContext()
	defer cancel()

	ws, err := ctx.API.WeeklySummary(rctx)
	if err != nil {
		return fmt.Errorf("failed to fetch weekly summary: %w", err)
	}
	ctx.Store.SetWeeklySummary(&ws)

	if c.Share {
		fmt.Println(ws.ShareText)
		return nil
	}

	fmt.Printf("Week %s – %s\n\n", ws.WeekStart, ws.WeekEnd)
	fmt.Println(ws.AISummary)
	if ws.MotivationalMessage != "" {
		fmt.Println("\n" + ws.MotivationalMessage)
	}
	if len(ws.Tips) > 0 {
		fmt.Println("\nTips:")
		for _, tip := range ws.Tips {
			fmt.Println("  • " + tip)
		}
	}
	fmt.Printf("\n%d/%d completed · best streak %d · %.0f%% completion rate\n",
		ws.CompletedCount, ws.TotalHabits, ws.BestStreak, ws.CompletionRate*100)
	return nil
}

// AnalyzeCmd runs the failure-pattern analysis, optionally scoped to one habit.
type AnalyzeCmd struct {
	Habit  string `arg:"" optional:"" help:"Habit id or name to focus on."`
	Period int    `short:"p" help:"Analysis window in days." default:"30"`
}

func (c *AnalyzeCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	var habitID *int64
	if c.Habit != "" {
		habit, err := findHabit(ctx.Store, c.Habit)
		if err != nil {
			return err
		}
		habitID = &habit.ID
	}

	rctx, cancel := reqContext()
	defer cancel()

	fa, err := ctx.API.FailureAnalysis(rctx, habitID, c.Period)
	if err != nil {
		return fmt.Errorf("failed to run analysis: %w", err)
	}
	ctx.Store.SetFailureAnalysis(&fa)

	if fa.HabitName != nil {
		fmt.Printf("Analysis for %s (last %d days)\n\n", *fa.HabitName, c.Period)
	} else {
		fmt.Printf("Analysis across all habits (last %d days)\n\n", c.Period)
	}
	fmt.Println(fa.EmpatheticMessage)
	fmt.Printf("\n%d skips · %.0f%% failure rate\n", fa.FailureCount, fa.FailureRate*100)

	if len(fa.CommonPatterns) > 0 {
		fmt.Println("\nPatterns:")
		for _, p := range fa.CommonPatterns {
			line := fmt.Sprintf("  • %s ×%d", p.DayOfWeek, p.Frequency)
			if p.TimeOfDay != nil {
				line += " around " + *p.TimeOfDay
			}
			if p.Reason != nil {
				line += " (" + *p.Reason + ")"
			}
			fmt.Println(line)
		}
	}
	for i, s := range fa.Strategies {
		fmt.Printf("\nStrategy %d: %s [%s]\n", i+1, s.Title, s.Difficulty)
		fmt.Println("  " + s.Description)
		for _, step := range s.ActionSteps {
			fmt.Println("    - " + step)
		}
	}
	return nil
}

type AdviceCmd struct {
	Context string `arg:"" optional:"" help:"What you want advice about."`
}

func (c *AdviceCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	rctx, cancel := reqContext()
	defer cancel()

	advice, err := ctx.API.Advice(rctx, c.Context)
	if err != nil {
		return fmt.Errorf("failed to fetch advice: %w", err)
	}

	fmt.Println(advice.Advice)
	fmt.Printf("\n(%s advice, %.0f%% confidence)\n", advice.Category, advice.Confidence*100)
	return nil
}

// ChatCmd starts an interactive chat session with the habit coach.
type ChatCmd struct {
	Message string `arg:"" optional:"" help:"One-shot message; omit for interactive mode."`
}

func (c *ChatCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	var history []models.ChatMessage

	ask := func(message string) error {
		rctx, cancel := reqContext()
		defer cancel()

		resp, err := ctx.API.Chat(rctx, message, history)
		if err != nil {
			return fmt.Errorf("chat failed: %w", err)
		}

		now := time.Now()
		history = append(history,
			models.ChatMessage{Role: "user", Content: message, Timestamp: now},
			models.ChatMessage{Role: "assistant", Content: resp.Message, Timestamp: now},
		)

		fmt.Println(resp.Message)
		if len(resp.Suggestions) > 0 {
			fmt.Println()
			for _, s := range resp.Suggestions {
				fmt.Println("  → " + s)
			}
		}
		return nil
	}

	if c.Message != "" {
		return ask(c.Message)
	}

	fmt.Println("Chatting with your habit coach. Empty line to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		if err := ask(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// SuggestCmd asks the AI to propose a new habit and optionally adds it.
type SuggestCmd struct {
	Goal string `arg:"" optional:"" help:"The goal the habit should serve."`
	Add  bool   `help:"Create the suggested habit right away."`
}

func (c *SuggestCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	rctx, cancel := reqContext()
	defer cancel()

	hs, err := ctx.API.SuggestHabit(rctx, c.Goal)
	if err != nil {
		return fmt.Errorf("failed to fetch suggestion: %w", err)
	}

	fmt.Printf("%s %s (%s)\n", hs.SuggestedEmoji, hs.SuggestedName, hs.Category)
	if hs.SuggestedTime != nil {
		fmt.Printf("Suggested time: %s\n", *hs.SuggestedTime)
	}
	fmt.Println(hs.Reasoning)

	if !c.Add {
		fmt.Println("\nRun with --add to create it.")
		return nil
	}

	hc := models.HabitCreate{
		Name:         hs.SuggestedName,
		Emoji:        hs.SuggestedEmoji,
		ReminderTime: hs.SuggestedTime,
		Frequency:    models.FrequencyDaily,
		TargetDays:   21,
	}
	habit, err := ctx.API.CreateHabit(rctx, hc)
	if err != nil {
		return fmt.Errorf("failed to create suggested habit: %w", err)
	}
	ctx.Store.AddHabit(habit)
	fmt.Printf("\nAdded habit: %s %s (id %d)\n", habit.Emoji, habit.Name, habit.ID)
	return nil
}
