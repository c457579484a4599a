package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/rollover"
	"github.com/julianstephens/daybook/internal/store"
)

// Context carries the constructed domain store into each command; no
// command reaches for ambient global state.
type Context struct {
	Store    *store.Store
	Rollover *rollover.Scheduler
	Today    string
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// resolveHabit accepts either a habit id or an exact name.
func resolveHabit(ctx *Context, ref string) (models.Habit, error) {
	if habit, err := ctx.Store.Habit(ref); err == nil {
		return habit, nil
	}
	return ctx.Store.HabitByName(ref)
}

// resolveTask accepts a full task id or an unambiguous id prefix.
func resolveTask(ctx *Context, ref string) (models.Task, error) {
	if task, err := ctx.Store.Task(ref); err == nil {
		return task, nil
	}

	var matches []models.Task
	for _, task := range ctx.Store.Tasks() {
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Task{}, fmt.Errorf("task not found: %s", ref)
	default:
		return models.Task{}, fmt.Errorf("task id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func checkbox(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return "[ ]"
}
