package cli

import (
	"fmt"

	"habitmini/internal/logger"
)

// SyncCmd pulls the authoritative habit list and user profile from the
// backend, replacing the local copies wholesale.
type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	rctx, cancel := reqContext()
	defer cancel()

	user, err := ctx.API.Me(rctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	ctx.Store.SetUser(&user)

	list, err := ctx.API.Habits(rctx)
	if err != nil {
		return fmt.Errorf("failed to fetch habits: %w", err)
	}
	ctx.Store.SetHabits(list.Habits)

	logger.Info("Synced with backend", "habits", list.Total, "user", user.ID)
	fmt.Printf("Synced %d habits for %s\n", list.Total, user.DisplayName())
	return nil
}
