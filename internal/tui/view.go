package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	for i, name := range tabNames {
		if SessionState(i) == m.state {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(inactiveTabStyle.Render(name))
		}
	}
	b.WriteString("\n\n")

	switch m.state {
	case StateToday:
		b.WriteString(m.viewToday())
	case StateHabits:
		b.WriteString(m.viewHabits())
	case StateTasks:
		b.WriteString(m.viewTasks())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewToday() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", m.summary.Date)
	fmt.Fprintf(&b, "Tasks:  %d/%d done, avg progress %.0f%%\n",
		m.summary.TasksDone, m.summary.TasksTotal, m.summary.AvgTaskProgress)
	fmt.Fprintf(&b, "Habits: %d/%d completed\n", m.summary.HabitsDone, m.summary.HabitsTotal)
	if m.summary.DisciplineScore != nil {
		fmt.Fprintf(&b, "Discipline score: %s\n",
			streakStyle.Render(fmt.Sprintf("%d/10", *m.summary.DisciplineScore)))
	} else {
		b.WriteString(dimStyle.Render("No tracker yet today.") + "\n")
	}

	return b.String()
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return dimStyle.Render("No habits. Add one with 'daybook habit add'.") + "\n"
	}

	var b strings.Builder
	for i, habit := range m.habits {
		cursor := "  "
		if i == m.habitCursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if habit.CompletedToday {
			mark = doneStyle.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, mark, habit.Name,
			streakStyle.Render(fmt.Sprintf("%d🔥", habit.CurrentStreak)))
	}
	return b.String()
}

func (m Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return dimStyle.Render("No tasks for today.") + "\n"
	}

	var b strings.Builder
	for i, task := range m.tasks {
		cursor := "  "
		if i == m.taskCursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if task.Completed {
			mark = doneStyle.Render("[x]")
		}
		carried := ""
		if task.CarriedForward {
			carried = dimStyle.Render(" ↻")
		}
		fmt.Fprintf(&b, "%s%s %3d%% %s%s\n", cursor, mark, task.Progress, task.Title, carried)
	}
	return b.String()
}
