package projection

import (
	"math"
	"testing"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(storage.NewSnapshot(), nil)

	t1, _ := s.CreateTask("Write report", 60, "2026-03-10")
	s.UpdateTaskProgress(t1.ID, 100)
	t2, _ := s.CreateTask("Review notes", 30, "2026-03-10")
	s.UpdateTaskProgress(t2.ID, 50)
	s.CreateTask("Plan sprint", 20, "2026-03-11")

	h, _ := s.AddHabit("Meditate", "om")
	s.ToggleHabitCompletion(h.ID, "2026-03-09")
	s.ToggleHabitCompletion(h.ID, "2026-03-10")
	s.AddHabit("Run", "")

	return s
}

func TestHabitsWithStreaks(t *testing.T) {
	s := seededStore(t)

	habits := HabitsWithStreaks(s, "2026-03-10")
	if len(habits) != 2 {
		t.Fatalf("habits = %d, want 2", len(habits))
	}

	meditate := habits[0]
	if meditate.Name != "Meditate" {
		t.Fatalf("first habit = %q, want creation order", meditate.Name)
	}
	if meditate.CurrentStreak != 2 || !meditate.CompletedToday {
		t.Errorf("meditate streak=%d completedToday=%v, want 2/true", meditate.CurrentStreak, meditate.CompletedToday)
	}

	run := habits[1]
	if run.CurrentStreak != 0 || run.CompletedToday {
		t.Errorf("run streak=%d completedToday=%v, want 0/false", run.CurrentStreak, run.CompletedToday)
	}
}

func TestBuildTodaySummary(t *testing.T) {
	s := seededStore(t)

	summary := BuildTodaySummary(s, "2026-03-10")

	if summary.TasksTotal != 2 || summary.TasksDone != 1 {
		t.Errorf("tasks = %d/%d, want 1/2", summary.TasksDone, summary.TasksTotal)
	}
	if summary.AvgTaskProgress != 75 {
		t.Errorf("avg progress = %f, want 75", summary.AvgTaskProgress)
	}
	if summary.HabitsTotal != 2 || summary.HabitsDone != 1 {
		t.Errorf("habits = %d/%d, want 1/2", summary.HabitsDone, summary.HabitsTotal)
	}
	if summary.DisciplineScore != nil {
		t.Error("no tracker saved, score should be nil")
	}

	s.SaveDailyTracker(models.DailyTracker{Date: "2026-03-10", Energy: 10, Focus: 10, Mood: 10, Stress: 10})
	summary = BuildTodaySummary(s, "2026-03-10")
	if summary.DisciplineScore == nil || *summary.DisciplineScore != 5 {
		t.Errorf("score = %v, want 5", summary.DisciplineScore)
	}
}

func TestBuildWeekSummary(t *testing.T) {
	s := seededStore(t)

	// 2026-03-10 is a Tuesday; the week runs 03-09 through 03-15.
	summary, err := BuildWeekSummary(s, "2026-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if summary.Start != "2026-03-09" || summary.End != "2026-03-15" {
		t.Errorf("window = %s..%s, want 2026-03-09..2026-03-15", summary.Start, summary.End)
	}
	if summary.TasksTotal != 3 || summary.TasksCompleted != 1 {
		t.Errorf("tasks = %d/%d, want 1/3", summary.TasksCompleted, summary.TasksTotal)
	}
}

func TestBuildInsights(t *testing.T) {
	s := seededStore(t)
	s.SaveDailyTracker(models.DailyTracker{Date: "2026-03-10", Energy: 10, Focus: 10, Mood: 10, Stress: 10})

	insights, err := BuildInsights(s, "2026-03-11", 3)
	if err != nil {
		t.Fatal(err)
	}
	if insights.Start != "2026-03-09" || insights.End != "2026-03-11" {
		t.Errorf("window = %s..%s, want 2026-03-09..2026-03-11", insights.Start, insights.End)
	}

	// Habit completions on 03-09 and 03-10: 2 of 3 days have activity.
	want := 2.0 / 3.0 * 100
	if !almostEqual(insights.ConsistencyPct, want) {
		t.Errorf("consistency = %f, want %f", insights.ConsistencyPct, want)
	}

	// Mean of the two habits' rates: 2/3 and 0.
	wantAdherence := (2.0 / 3.0 * 100) / 2
	if !almostEqual(insights.AdherencePct, wantAdherence) {
		t.Errorf("adherence = %f, want %f", insights.AdherencePct, wantAdherence)
	}

	// Tasks in window: 100, 50, 0.
	if insights.AccuracyPct != 50 {
		t.Errorf("accuracy = %f, want 50", insights.AccuracyPct)
	}

	if len(insights.ScoreSeries) != 1 || insights.ScoreSeries[0].Score != 5 {
		t.Errorf("score series = %+v", insights.ScoreSeries)
	}
}
