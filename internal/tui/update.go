package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.state = SessionState((int(m.state) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = SessionState((int(m.state) + len(tabNames) - 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
			return m, nil

		case key.Matches(msg, m.keys.More):
			m.bumpProgress(10)
			return m, nil

		case key.Matches(msg, m.keys.Less):
			m.bumpProgress(-10)
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.state {
	case StateHabits:
		m.habitCursor = clampCursor(m.habitCursor+delta, len(m.habits))
	case StateTasks:
		m.taskCursor = clampCursor(m.taskCursor+delta, len(m.tasks))
	}
}

func (m *Model) toggleSelected() {
	switch m.state {
	case StateHabits:
		if m.habitCursor < len(m.habits) {
			_, _ = m.store.ToggleHabitCompletion(m.habits[m.habitCursor].ID, m.today)
			m.refresh()
		}
	case StateTasks:
		if m.taskCursor < len(m.tasks) {
			task := m.tasks[m.taskCursor]
			progress := 100
			if task.Completed {
				progress = 0
			}
			_, _ = m.store.UpdateTaskProgress(task.ID, progress)
			m.refresh()
		}
	}
}

func (m *Model) bumpProgress(delta int) {
	if m.state != StateTasks || m.taskCursor >= len(m.tasks) {
		return
	}
	task := m.tasks[m.taskCursor]
	_, _ = m.store.UpdateTaskProgress(task.ID, task.Progress+delta)
	m.refresh()
}

func clampCursor(v, n int) int {
	if n == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
