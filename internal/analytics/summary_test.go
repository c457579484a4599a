package analytics

import (
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func TestWeeklySummary(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Date: "2026-03-09", Completed: true},
		{ID: "t2", Date: "2026-03-11"},
		{ID: "t3", Date: "2026-03-15", Completed: true},
		{ID: "t4", Date: "2026-03-02", Completed: true}, // previous week
	}
	habits := []models.Habit{
		habitWith("2026-03-13", "2026-03-14", "2026-03-15"),                // streak 3 at window end
		{ID: "h2", Name: "Run", CompletedDates: []string{"2026-03-09"}},
	}

	summary := WeeklySummary(tasks, habits, "2026-03-09", "2026-03-15")

	if summary.TasksTotal != 3 {
		t.Errorf("TasksTotal = %d, want 3", summary.TasksTotal)
	}
	if summary.TasksCompleted != 2 {
		t.Errorf("TasksCompleted = %d, want 2", summary.TasksCompleted)
	}
	if summary.PeakStreak != 3 {
		t.Errorf("PeakStreak = %d, want 3", summary.PeakStreak)
	}

	// Mean of 3/7 and 1/7.
	want := (3.0/7.0*100 + 1.0/7.0*100) / 2
	if !almostEqual(summary.HabitCompletionRate, want) {
		t.Errorf("HabitCompletionRate = %f, want %f", summary.HabitCompletionRate, want)
	}
}

func TestWeeklySummaryEmpty(t *testing.T) {
	summary := WeeklySummary(nil, nil, "2026-03-09", "2026-03-15")

	if summary.TasksTotal != 0 || summary.TasksCompleted != 0 {
		t.Errorf("task counts = %d/%d, want 0/0", summary.TasksCompleted, summary.TasksTotal)
	}
	if summary.HabitCompletionRate != 0 {
		t.Errorf("HabitCompletionRate = %f, want 0", summary.HabitCompletionRate)
	}
	if summary.PeakStreak != 0 {
		t.Errorf("PeakStreak = %d, want 0", summary.PeakStreak)
	}
}
