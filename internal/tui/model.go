package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitmini/internal/api"
	"habitmini/internal/reminder"
	"habitmini/internal/store"
	"habitmini/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateStats
	StateSummary
	StateAddHabit
	StateConfirmDelete
)

// tabCount is the number of cyclable tabs; modal states come after.
const tabCount = 3

type HabitFormModel struct {
	Name         string
	Emoji        string
	ReminderTime string
	Frequency    string
}

type Model struct {
	store    *store.Store
	api      *api.Client
	reminder *reminder.Projector

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model

	form      *huh.Form
	habitForm *HabitFormModel

	habitToDeleteID int64
	statusMsg       string
	quitting        bool
	width           int
	height          int
}

func NewModel(s *store.Store, client *api.Client, rem *reminder.Projector) Model {
	return Model{
		store:     s,
		api:       client,
		reminder:  rem,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(s.Habits(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Refresh)
	case StateSummary:
		keys = append(keys, m.keys.Generate)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Refresh}
	case StateSummary:
		actions = []key.Binding{m.keys.Generate}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	// The store already holds the persisted snapshot; refresh from the
	// backend in the background.
	return tea.Batch(fetchHabitsCmd(m.api), fetchUserCmd(m.api), fetchWeeklyCmd(m.api))
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Emoji").
				Value(&fm.Emoji),
			huh.NewInput().
				Title("Reminder (HH:MM, optional)").
				Value(&fm.ReminderTime),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Custom", "custom"),
				).
				Value(&fm.Frequency),
		),
	)
}
