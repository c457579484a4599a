package analytics

import "github.com/julianstephens/daybook/internal/models"

// WeekSummary aggregates task and habit outcomes over a date window
// for the weekly review.
type WeekSummary struct {
	Start               string  `json:"start"` // YYYY-MM-DD format
	End                 string  `json:"end"`   // YYYY-MM-DD format
	TasksCompleted      int     `json:"tasks_completed"`
	TasksTotal          int     `json:"tasks_total"`
	HabitCompletionRate float64 `json:"habit_completion_rate"` // percent
	PeakStreak          int     `json:"peak_streak"`
}

// WeeklySummary computes task counts, the mean habit completion rate
// and the peak streak (as of the window's end day) over [start, end].
func WeeklySummary(tasks []models.Task, habits []models.Habit, start, end string) WeekSummary {
	summary := WeekSummary{Start: start, End: end}

	for _, task := range tasks {
		if task.Date < start || task.Date > end {
			continue
		}
		summary.TasksTotal++
		if task.Completed {
			summary.TasksCompleted++
		}
	}

	var rateSum float64
	for _, habit := range habits {
		rateSum += CompletionRate(habit, start, end)
		if streak := Streak(habit, end); streak > summary.PeakStreak {
			summary.PeakStreak = streak
		}
	}
	if len(habits) > 0 {
		summary.HabitCompletionRate = rateSum / float64(len(habits))
	}

	return summary
}
