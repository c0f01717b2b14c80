package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitmini/internal/api"
	"habitmini/internal/models"
)

const fetchTimeout = 30 * time.Second

type habitsLoadedMsg struct {
	list models.HabitList
}

type userLoadedMsg struct {
	user models.UserProfile
}

type summaryLoadedMsg struct {
	summary models.WeeklySummary
}

type weeklyLoadedMsg struct {
	progress models.WeeklyProgress
}

type completeDoneMsg struct {
	id     int64
	result models.HabitCompleteResult
}

type skipDoneMsg struct {
	id int64
}

type deleteDoneMsg struct {
	id int64
}

type habitCreatedMsg struct {
	habit models.Habit
}

type apiErrMsg struct {
	err error
}

func fetchCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fetchTimeout)
}

func fetchHabitsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		list, err := client.Habits(ctx)
		if err != nil {
			return apiErrMsg{err}
		}
		return habitsLoadedMsg{list}
	}
}

func fetchUserCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		user, err := client.Me(ctx)
		if err != nil {
			return apiErrMsg{err}
		}
		return userLoadedMsg{user}
	}
}

func fetchSummaryCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		summary, err := client.WeeklySummary(ctx)
		if err != nil {
			return apiErrMsg{err}
		}
		return summaryLoadedMsg{summary}
	}
}

func fetchWeeklyCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		progress, err := client.WeeklyProgress(ctx)
		if err != nil {
			return apiErrMsg{err}
		}
		return weeklyLoadedMsg{progress}
	}
}

func completeHabitCmd(client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		result, err := client.CompleteHabit(ctx, id, "", "")
		if err != nil {
			return apiErrMsg{err}
		}
		return completeDoneMsg{id, result}
	}
}

func skipHabitCmd(client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		if err := client.SkipHabit(ctx, id, ""); err != nil {
			return apiErrMsg{err}
		}
		return skipDoneMsg{id}
	}
}

func deleteHabitCmd(client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		if err := client.DeleteHabit(ctx, id); err != nil {
			return apiErrMsg{err}
		}
		return deleteDoneMsg{id}
	}
}

func createHabitCmd(client *api.Client, hc models.HabitCreate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()

		habit, err := client.CreateHabit(ctx, hc)
		if err != nil {
			return apiErrMsg{err}
		}
		return habitCreatedMsg{habit}
	}
}
