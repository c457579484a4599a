package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "daybook.db"))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := testStore(t)

	want := storage.NewSnapshot()
	want.Tasks = []models.Task{{
		ID:              "t1",
		Title:           "Write report",
		TimeEstimateMin: 60,
		Progress:        40,
		Date:            "2026-03-10",
		CarriedForward:  true,
		ForwardedFrom:   "t0",
		CreatedAt:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}}
	want.Habits = []models.Habit{{
		ID:             "h1",
		Name:           "Meditate",
		Icon:           "om",
		CompletedDates: []string{"2026-03-09", "2026-03-10"},
		Streak:         2,
		CreatedAt:      time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}}
	want.JournalEntries = []models.JournalEntry{{
		ID:        "j1",
		Type:      models.EntryTypeText,
		Content:   "a fine day",
		Tags:      []string{"mood", "weather"},
		Timestamp: time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC),
		Date:      "2026-03-10",
	}}
	want.DailyLogs = []models.DailyLog{{
		ID:        "l1",
		Text:      "shipped the thing",
		Timestamp: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
	}}
	want.Trackers = []models.DailyTracker{{
		ID:          "d1",
		Date:        "2026-03-10",
		Meditation:  true,
		Workout:     true,
		Energy:      7,
		Focus:       6,
		Mood:        8,
		Stress:      4,
		SleepHours:  7.5,
		WaterLiters: 2,
		WorkoutType: "run",
		PhotoRefs:   []string{"a.jpg"},
		Reflection:  "solid",
	}}
	want.Goals = []models.Goal{{
		ID:       "g1",
		Title:    "Ship v1",
		Progress: 30,
		Notes:    "on track",
		WeeklyProgress: []models.WeeklyPoint{
			{WeekLabel: "Mar 2", Value: 15},
			{WeekLabel: "Mar 9", Value: 30},
		},
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}}
	want.Profile = models.UserProfile{Age: 30, HeightCm: 180, WeightKg: 75}

	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(got.Tasks))
	}
	task := got.Tasks[0]
	if task.Title != "Write report" || task.ForwardedFrom != "t0" || !task.CarriedForward {
		t.Errorf("task = %+v", task)
	}
	if !task.CreatedAt.Equal(want.Tasks[0].CreatedAt) {
		t.Errorf("task created_at = %v, want %v", task.CreatedAt, want.Tasks[0].CreatedAt)
	}

	if len(got.Habits) != 1 {
		t.Fatalf("habits = %d, want 1", len(got.Habits))
	}
	habit := got.Habits[0]
	if habit.Icon != "om" || len(habit.CompletedDates) != 2 {
		t.Errorf("habit = %+v", habit)
	}

	if len(got.JournalEntries) != 1 || len(got.JournalEntries[0].Tags) != 2 {
		t.Errorf("journal = %+v", got.JournalEntries)
	}
	if len(got.DailyLogs) != 1 || got.DailyLogs[0].Text != "shipped the thing" {
		t.Errorf("logs = %+v", got.DailyLogs)
	}

	if len(got.Trackers) != 1 {
		t.Fatalf("trackers = %d, want 1", len(got.Trackers))
	}
	tracker := got.Trackers[0]
	if !tracker.Meditation || tracker.Energy != 7 || tracker.SleepHours != 7.5 {
		t.Errorf("tracker = %+v", tracker)
	}
	if len(tracker.PhotoRefs) != 1 || tracker.WorkoutType != "run" {
		t.Errorf("tracker extras = %+v", tracker)
	}

	if len(got.Goals) != 1 {
		t.Fatalf("goals = %d, want 1", len(got.Goals))
	}
	goal := got.Goals[0]
	if len(goal.WeeklyProgress) != 2 || goal.WeeklyProgress[1].Value != 30 {
		t.Errorf("goal = %+v", goal)
	}

	if got.Profile != want.Profile {
		t.Errorf("profile = %+v, want %+v", got.Profile, want.Profile)
	}
}

func TestSQLiteSaveReplacesPreviousState(t *testing.T) {
	s := testStore(t)

	first := storage.NewSnapshot()
	first.Tasks = []models.Task{
		{ID: "t1", Title: "one", Date: "2026-03-10", CreatedAt: time.Now().UTC()},
		{ID: "t2", Title: "two", Date: "2026-03-10", CreatedAt: time.Now().UTC()},
	}
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}

	second := storage.NewSnapshot()
	second.Tasks = []models.Task{
		{ID: "t3", Title: "three", Date: "2026-03-11", CreatedAt: time.Now().UTC()},
	}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "t3" {
		t.Errorf("tasks = %+v, want only t3", got.Tasks)
	}
}

func TestSQLiteLoadFreshDatabase(t *testing.T) {
	s := testStore(t)

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("fresh database should degrade, not error: %v", err)
	}
	if snap.Version != constants.SnapshotVersion {
		t.Errorf("version = %d, want default", snap.Version)
	}
	if len(snap.Tasks) != 0 || len(snap.Habits) != 0 {
		t.Errorf("fresh database not empty: %+v", snap)
	}
}

func TestSQLiteInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewStore(path)
	defer s.Close()

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if err := NewStore(path).Init(); err == nil {
		t.Error("second init should fail on existing database")
	}
}
