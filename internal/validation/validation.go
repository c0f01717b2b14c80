// Package validation checks habit input before it reaches the store or the
// API, mirroring the server's own bounds so bad input fails fast and locally.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"habitmini/internal/constants"
	"habitmini/internal/models"
)

const (
	NameMinLen        = 2
	NameMaxLen        = 100
	DescriptionMaxLen = 500
	EmojiMaxRunes     = 10
	TargetDaysMin     = 1
	TargetDaysMax     = 365
)

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < NameMinLen {
		return fmt.Errorf("name must be at least %d characters", NameMinLen)
	}
	if len(name) > NameMaxLen {
		return fmt.Errorf("name must be at most %d characters", NameMaxLen)
	}
	return nil
}

func ValidateDescription(desc string) error {
	if len(desc) > DescriptionMaxLen {
		return fmt.Errorf("description must be at most %d characters", DescriptionMaxLen)
	}
	return nil
}

func ValidateEmoji(emoji string) error {
	if emoji == "" {
		return fmt.Errorf("emoji is required")
	}
	if utf8.RuneCountInString(emoji) > EmojiMaxRunes {
		return fmt.Errorf("emoji must be at most %d characters", EmojiMaxRunes)
	}
	return nil
}

// ValidateReminderTime accepts 24-hour HH:MM.
func ValidateReminderTime(value string) error {
	if _, err := time.Parse(constants.TimeFormat, value); err != nil {
		return fmt.Errorf("reminder time must be HH:MM, got %q", value)
	}
	return nil
}

func ValidateFrequency(freq models.Frequency) error {
	switch freq {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyCustom:
		return nil
	}
	return fmt.Errorf("frequency must be daily, weekly, or custom, got %q", freq)
}

func ValidateTargetDays(days int) error {
	if days < TargetDaysMin || days > TargetDaysMax {
		return fmt.Errorf("target days must be between %d and %d", TargetDaysMin, TargetDaysMax)
	}
	return nil
}

// ValidateCreate checks a full create payload.
func ValidateCreate(hc models.HabitCreate) error {
	if err := ValidateName(hc.Name); err != nil {
		return err
	}
	if hc.Description != nil {
		if err := ValidateDescription(*hc.Description); err != nil {
			return err
		}
	}
	if err := ValidateEmoji(hc.Emoji); err != nil {
		return err
	}
	if hc.ReminderTime != nil {
		if err := ValidateReminderTime(*hc.ReminderTime); err != nil {
			return err
		}
	}
	if err := ValidateFrequency(hc.Frequency); err != nil {
		return err
	}
	return ValidateTargetDays(hc.TargetDays)
}

// ValidatePatch checks only the fields present in a partial update.
func ValidatePatch(p models.HabitPatch) error {
	if p.Name != nil {
		if err := ValidateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := ValidateDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Emoji != nil {
		if err := ValidateEmoji(*p.Emoji); err != nil {
			return err
		}
	}
	// An empty reminder time in a patch clears the reminder
	if p.ReminderTime != nil && *p.ReminderTime != "" {
		if err := ValidateReminderTime(*p.ReminderTime); err != nil {
			return err
		}
	}
	if p.Frequency != nil {
		if err := ValidateFrequency(*p.Frequency); err != nil {
			return err
		}
	}
	if p.TargetDays != nil {
		if err := ValidateTargetDays(*p.TargetDays); err != nil {
			return err
		}
	}
	return nil
}
