package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	StatePath *DebugStatePathCmd `cmd:"" help:"Show state file path."`
	DumpState *DebugDumpStateCmd `cmd:"" help:"Dump the persisted snapshot as JSON."`
	DumpHabit *DebugDumpHabitCmd `cmd:"" help:"Dump one habit as JSON."`
}

type DebugStatePathCmd struct{}

func (cmd *DebugStatePathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Storage.GetConfigPath(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *Context) error {
	if err := ctx.Storage.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	snap, ok, err := ctx.Storage.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !ok {
		return fmt.Errorf("no snapshot persisted yet")
	}

	jsonBytes, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpHabitCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	habit, err := findHabit(ctx.Store, cmd.Habit)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(habit, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal habit: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
