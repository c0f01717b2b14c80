package cli

import (
	"fmt"

	"habitmini/internal/models"
)

// SettingsCmd shows the current settings; subcommand-less edits go through
// the flags below and are pushed to the backend.
type SettingsCmd struct {
	AI            string `help:"Enable or disable AI features (on|off)."`
	Notifications string `help:"Enable or disable notifications (on|off)."`
	Timezone      string `help:"IANA timezone name, e.g. Europe/Berlin."`
	Theme         string `help:"Theme (light|dark|system)."`
}

func parseToggle(value string) (bool, error) {
	switch value {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", value)
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.LoadState(); err != nil {
		return err
	}

	user := ctx.Store.User()
	if user == nil {
		return fmt.Errorf("no profile loaded, run 'habitmini sync' first")
	}

	settings := user.Settings
	changed := false
	if c.AI != "" {
		v, err := parseToggle(c.AI)
		if err != nil {
			return err
		}
		settings.AIEnabled = v
		changed = true
	}
	if c.Notifications != "" {
		v, err := parseToggle(c.Notifications)
		if err != nil {
			return err
		}
		settings.NotificationEnabled = v
		changed = true
	}
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
		changed = true
	}
	if c.Theme != "" {
		switch c.Theme {
		case "light", "dark", "system":
		default:
			return fmt.Errorf("theme must be light, dark, or system")
		}
		settings.Theme = c.Theme
		changed = true
	}

	if !changed {
		printSettings(settings)
		return nil
	}

	rctx, cancel := reqContext()
	defer cancel()

	updated, err := ctx.API.UpdateSettings(rctx, settings)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	ctx.Store.SetUser(&updated)

	fmt.Println("Settings updated.")
	printSettings(updated.Settings)
	return nil
}

func printSettings(s models.UserSettings) {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	fmt.Printf("AI features:    %s\n", onOff(s.AIEnabled))
	fmt.Printf("Notifications:  %s\n", onOff(s.NotificationEnabled))
	fmt.Printf("Timezone:       %s\n", s.Timezone)
	fmt.Printf("Theme:          %s\n", s.Theme)
}
