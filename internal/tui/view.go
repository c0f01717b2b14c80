package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateSummary:
		content = docStyle.Render(m.viewSummary())
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Stats", "Summary"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if errMsg, ok := m.store.ErrorMessage(); ok {
		return statusErrStyle.Render("⚠ " + errMsg)
	}
	if m.store.Loading() {
		return subtleStyle.Render("Loading…")
	}
	if m.statusMsg != "" {
		return subtleStyle.Render(m.statusMsg)
	}
	return ""
}

func (m Model) viewStats() string {
	habits := m.store.Habits()
	progress := m.store.TodayProgress()
	streaks := m.store.StreakSummary()

	var b strings.Builder
	b.WriteString(headingStyle.Render("Today") + "\n")
	b.WriteString(fmt.Sprintf("%s %d%% (%d/%d completed)\n\n", progressBar(progress, 24), progress, m.store.CompletedTodayCount(), len(habits)))
	b.WriteString(fmt.Sprintf("Current streak: %d\nBest streak:    %d\n", streaks.Current, streaks.Best))

	if entries := m.reminder.Schedule(habits, time.Now()); len(entries) > 0 {
		b.WriteString("\n" + headingStyle.Render("Reminders") + "\n")
		for _, e := range entries {
			mark := "○"
			if e.Completed {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("%s %s  %s %s\n", mark, e.Time, e.Emoji, e.Name))
		}
	}

	if wp := m.store.WeeklyProgress(); wp != nil {
		b.WriteString("\n" + headingStyle.Render("This week") + "\n")
		for _, day := range wp.Days {
			label := day.Date
			if t, err := time.Parse("2006-01-02", day.Date); err == nil {
				label = t.Format("Mon")
			}
			b.WriteString(fmt.Sprintf("%s %s %d/%d\n", label, progressBar(int(day.Percentage), 16), day.Completed, day.Total))
		}
		b.WriteString(fmt.Sprintf("Average: %.0f%%\n", wp.AveragePercentage))
	}

	if user := m.store.User(); user != nil {
		b.WriteString("\n" + headingStyle.Render("Lifetime") + "\n")
		b.WriteString(fmt.Sprintf("%d completions · %.0f%% (7d) · %.0f%% (30d)\n",
			user.Stats.TotalCompletions, user.Stats.CompletionRate7d, user.Stats.CompletionRate30d))
	}

	return b.String()
}

func (m Model) viewSummary() string {
	ws := m.store.WeeklySummary()
	if ws == nil {
		return "No weekly summary yet.\nPress 'g' to generate one."
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Week %s – %s", ws.WeekStart, ws.WeekEnd)) + "\n\n")
	b.WriteString(ws.AISummary + "\n")
	if ws.MotivationalMessage != "" {
		b.WriteString("\n" + ws.MotivationalMessage + "\n")
	}
	if len(ws.Tips) > 0 {
		b.WriteString("\nTips:\n")
		for _, tip := range ws.Tips {
			b.WriteString("  • " + tip + "\n")
		}
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("\n%d/%d completed · best streak %d", ws.CompletedCount, ws.TotalHabits, ws.BestStreak)))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	name := "this habit"
	if h, ok := m.store.Habit(m.habitToDeleteID); ok {
		name = h.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s and its history?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func progressBar(percentage, width int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := percentage * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
