package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitmini/internal/models"
	"habitmini/internal/tui/components/habitlist"
	"habitmini/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitsLoadedMsg:
		m.store.SetHabits(msg.list.Habits)
		m.habitList.SetHabits(m.store.Habits())
		m.store.SetLoading(false)
		return m, nil

	case userLoadedMsg:
		m.store.SetUser(&msg.user)
		return m, nil

	case summaryLoadedMsg:
		summary := msg.summary
		m.store.SetWeeklySummary(&summary)
		m.store.SetLoading(false)
		return m, nil

	case weeklyLoadedMsg:
		progress := msg.progress
		m.store.SetWeeklyProgress(&progress)
		return m, nil

	case completeDoneMsg:
		if msg.result.NewStreak != 0 {
			streak := msg.result.NewStreak
			m.store.UpdateHabit(msg.id, models.HabitPatch{CurrentStreak: &streak})
		}
		m.habitList.SetHabits(m.store.Habits())
		if msg.result.IsMilestone {
			m.statusMsg = "🎉 " + msg.result.Message
		} else {
			m.statusMsg = msg.result.Message
		}
		return m, nil

	case skipDoneMsg:
		m.statusMsg = "Skipped for today. Streak reset."
		return m, nil

	case deleteDoneMsg:
		return m, nil

	case habitCreatedMsg:
		m.store.AddHabit(msg.habit)
		m.habitList.SetHabits(m.store.Habits())
		m.statusMsg = "Added " + msg.habit.Name
		return m, nil

	case apiErrMsg:
		m.store.SetError(msg.err.Error())
		m.store.SetLoading(false)
		return m, nil

	case habitlist.AddHabitMsg:
		m.previousState = m.state
		m.state = StateAddHabit
		m.habitForm = &HabitFormModel{Emoji: "✅", Frequency: "daily"}
		m.form = newHabitForm(m.habitForm)
		return m, m.form.Init()

	case habitlist.CompleteHabitMsg:
		// Optimistic: mutate locally, confirm with the backend
		m.store.CompleteHabit(msg.ID)
		m.habitList.SetHabits(m.store.Habits())
		return m, completeHabitCmd(m.api, msg.ID)

	case habitlist.SkipHabitMsg:
		zero := 0
		m.store.UpdateHabit(msg.ID, models.HabitPatch{CurrentStreak: &zero})
		m.habitList.SetHabits(m.store.Habits())
		return m, skipHabitCmd(m.api, msg.ID)

	case habitlist.DeleteHabitMsg:
		m.previousState = m.state
		m.state = StateConfirmDelete
		m.habitToDeleteID = msg.ID
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Refresh):
			m.store.ClearError()
			m.store.SetLoading(true)
			return m, tea.Batch(fetchHabitsCmd(m.api), fetchUserCmd(m.api), fetchWeeklyCmd(m.api))
		case key.Matches(keyMsg, m.keys.Generate):
			if m.state == StateSummary {
				m.store.SetLoading(true)
				return m, fetchSummaryCmd(m.api)
			}
		}
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		hc := models.HabitCreate{
			Name:       strings.TrimSpace(m.habitForm.Name),
			Emoji:      m.habitForm.Emoji,
			Frequency:  models.Frequency(m.habitForm.Frequency),
			TargetDays: 21,
		}
		if t := strings.TrimSpace(m.habitForm.ReminderTime); t != "" {
			hc.ReminderTime = &t
		}
		m.state = m.previousState
		if err := validation.ValidateCreate(hc); err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		return m, createHabitCmd(m.api, hc)

	case huh.StateAborted:
		m.state = m.previousState
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		id := m.habitToDeleteID
		m.store.RemoveHabit(id)
		m.habitList.SetHabits(m.store.Habits())
		m.state = m.previousState
		return m, deleteHabitCmd(m.api, id)
	case "n", "N", "esc", "q":
		m.state = m.previousState
		return m, nil
	}
	return m, nil
}
