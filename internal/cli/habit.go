package cli

import (
	"fmt"
	"strings"

	"habitmini/internal/logger"
	"habitmini/internal/models"
	"habitmini/internal/validation"
)

type HabitAddCmd struct {
	Name         string `arg:"" help:"Habit name."`
	Emoji        string `short:"e" help:"Emoji shown next to the habit." default:"✅"`
	Description  string `short:"d" help:"Optional description."`
	ReminderTime string `short:"t" help:"Daily reminder time (HH:MM)."`
	Frequency    string `short:"f" help:"Frequency (daily|weekly|custom)." default:"daily"`
	TargetDays   int    `help:"Target length of the streak in days." default:"21"`
	Local        bool   `help:"Add locally only, without calling the backend."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	hc := models.HabitCreate{
		Name:       strings.TrimSpace(c.Name),
		Emoji:      c.Emoji,
		Frequency:  models.Frequency(c.Frequency),
		TargetDays: c.TargetDays,
	}
	if c.Description != "" {
		hc.Description = &c.Description
	}
	if c.ReminderTime != "" {
		hc.ReminderTime = &c.ReminderTime
	}
	if err := validation.ValidateCreate(hc); err != nil {
		return err
	}

	if c.Local {
		// Local ids are negative so they can never collide with server ids.
		id := int64(-1)
		for _, h := range ctx.Store.Habits() {
			if h.ID <= id {
				id = h.ID - 1
			}
		}
		habit := models.Habit{
			ID:           id,
			Name:         hc.Name,
			Description:  hc.Description,
			Emoji:        hc.Emoji,
			ReminderTime: hc.ReminderTime,
			Frequency:    hc.Frequency,
			TargetDays:   hc.TargetDays,
			IsActive:     true,
		}
		ctx.Store.AddHabit(habit)
		fmt.Printf("Added habit: %s %s (local id %d)\n", habit.Emoji, habit.Name, habit.ID)
		return nil
	}

	rctx, cancel := reqContext()
	defer cancel()

	habit, err := ctx.API.CreateHabit(rctx, hc)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	ctx.Store.AddHabit(habit)

	fmt.Printf("Added habit: %s %s (id %d)\n", habit.Emoji, habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitmini habit add <name>'.")
		return nil
	}

	fmt.Printf("Today: %d%% (%d/%d completed)\n\n", ctx.Store.TodayProgress(), ctx.Store.CompletedTodayCount(), len(habits))
	for _, h := range habits {
		status := checkmark(h.IsCompletedToday)
		line := fmt.Sprintf("%s %s %s (id %d)  streak %d, best %d", status, h.Emoji, h.Name, h.ID, h.CurrentStreak, h.BestStreak)
		if !h.IsActive {
			line += "  [paused]"
		}
		if h.ReminderTime != nil {
			line += "  ⏰ " + *h.ReminderTime
		}
		fmt.Println(line)
	}
	return nil
}

type HabitCompleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Notes string `short:"n" help:"Optional completion notes."`
	Mood  string `short:"m" help:"Optional mood (great|good|okay|bad)."`
}

func (c *HabitCompleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if habit.IsCompletedToday {
		return fmt.Errorf("%s is already completed today", habit.Name)
	}

	// Apply locally first; the backend confirmation only refines the result.
	ctx.Store.CompleteHabit(habit.ID)

	rctx, cancel := reqContext()
	defer cancel()

	result, err := ctx.API.CompleteHabit(rctx, habit.ID, c.Notes, c.Mood)
	if err != nil {
		ctx.Store.SetError(err.Error())
		logger.Warn("Completion not confirmed by backend", "habit", habit.ID, "error", err)
		fmt.Printf("Completed %s locally (backend unreachable, will reconcile on sync)\n", habit.Name)
		return nil
	}

	if result.NewStreak != 0 {
		streak := result.NewStreak
		ctx.Store.UpdateHabit(habit.ID, models.HabitPatch{CurrentStreak: &streak})
	}

	fmt.Printf("Completed %s %s — streak %d\n", habit.Emoji, habit.Name, result.NewStreak)
	if result.IsMilestone {
		fmt.Println("🎉 " + result.Message)
	} else if result.Message != "" {
		fmt.Println(result.Message)
	}
	return nil
}

type HabitSkipCmd struct {
	Habit  string `arg:"" help:"Habit id or name."`
	Reason string `short:"r" help:"Why today is being skipped."`
}

func (c *HabitSkipCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	// Skipping resets the current streak
	zero := 0
	ctx.Store.UpdateHabit(habit.ID, models.HabitPatch{CurrentStreak: &zero})

	rctx, cancel := reqContext()
	defer cancel()

	if err := ctx.API.SkipHabit(rctx, habit.ID, c.Reason); err != nil {
		ctx.Store.SetError(err.Error())
		logger.Warn("Skip not confirmed by backend", "habit", habit.ID, "error", err)
	}

	fmt.Printf("Skipped %s for today. Streak reset.\n", habit.Name)
	return nil
}

type HabitEditCmd struct {
	Habit        string `arg:"" help:"Habit id or name."`
	Name         string `help:"New name."`
	Emoji        string `short:"e" help:"New emoji."`
	Description  string `short:"d" help:"New description."`
	ReminderTime string `short:"t" help:"New reminder time (HH:MM), or 'none' to clear."`
	Frequency    string `short:"f" help:"New frequency (daily|weekly|custom)."`
	TargetDays   int    `help:"New target days."`
	Pause        bool   `help:"Pause the habit."`
	Resume       bool   `help:"Resume a paused habit."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if c.Pause && c.Resume {
		return fmt.Errorf("cannot pause and resume at the same time")
	}

	var patch models.HabitPatch
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Emoji != "" {
		patch.Emoji = &c.Emoji
	}
	if c.Description != "" {
		patch.Description = &c.Description
	}
	if c.ReminderTime != "" {
		if c.ReminderTime == "none" {
			empty := ""
			patch.ReminderTime = &empty
		} else {
			patch.ReminderTime = &c.ReminderTime
		}
	}
	if c.Frequency != "" {
		f := models.Frequency(c.Frequency)
		patch.Frequency = &f
	}
	if c.TargetDays != 0 {
		patch.TargetDays = &c.TargetDays
	}
	if c.Pause {
		inactive := false
		patch.IsActive = &inactive
	}
	if c.Resume {
		active := true
		patch.IsActive = &active
	}
	if patch == (models.HabitPatch{}) {
		return fmt.Errorf("nothing to change")
	}
	if err := validation.ValidatePatch(patch); err != nil {
		return err
	}

	ctx.Store.UpdateHabit(habit.ID, patch)

	rctx, cancel := reqContext()
	defer cancel()

	if _, err := ctx.API.UpdateHabit(rctx, habit.ID, patch); err != nil {
		ctx.Store.SetError(err.Error())
		logger.Warn("Edit not confirmed by backend", "habit", habit.ID, "error", err)
	}

	fmt.Printf("Updated habit %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete %s %s and its history? [y/N] ", habit.Emoji, habit.Name)
		var answer string
		fmt.Scanln(&answer)
		if !strings.HasPrefix(strings.ToLower(answer), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.Store.RemoveHabit(habit.ID)

	rctx, cancel := reqContext()
	defer cancel()

	if err := ctx.API.DeleteHabit(rctx, habit.ID); err != nil {
		ctx.Store.SetError(err.Error())
		logger.Warn("Delete not confirmed by backend", "habit", habit.ID, "error", err)
	}

	fmt.Printf("Deleted habit %s\n", habit.Name)
	return nil
}
