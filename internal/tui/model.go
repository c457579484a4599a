package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/projection"
	"github.com/julianstephens/daybook/internal/store"
	"github.com/julianstephens/daybook/internal/timeutil"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateTasks
)

var tabNames = []string{"Today", "Habits", "Tasks"}

// Model is the dashboard's bubbletea model. It reads projections from
// the store and issues commands back to it; all domain state lives in
// the store, the model only keeps cursors.
type Model struct {
	store *store.Store
	today string

	state       SessionState
	keys        KeyMap
	help        help.Model
	habitCursor int
	taskCursor  int

	habits  []projection.HabitWithStreak
	tasks   []models.Task
	summary projection.TodaySummary

	width    int
	height   int
	quitting bool
}

func NewModel(s *store.Store) Model {
	m := Model{
		store: s,
		today: timeutil.Today(),
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes the projections after any command.
func (m *Model) refresh() {
	m.habits = projection.HabitsWithStreaks(m.store, m.today)
	m.tasks = m.store.TasksForDay(m.today)
	m.summary = projection.BuildTodaySummary(m.store, m.today)

	if m.habitCursor >= len(m.habits) {
		m.habitCursor = max(0, len(m.habits)-1)
	}
	if m.taskCursor >= len(m.tasks) {
		m.taskCursor = max(0, len(m.tasks)-1)
	}
}
