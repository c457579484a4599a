package analytics

import (
	"math"
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func habitWith(dates ...string) models.Habit {
	return models.Habit{ID: "h1", Name: "Meditate", CompletedDates: dates}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStreakToleratesIncompleteToday(t *testing.T) {
	// Completed the two preceding days but not yet today: the streak is
	// still alive at 2.
	habit := habitWith("2026-03-08", "2026-03-09")

	if got := Streak(habit, "2026-03-10"); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestStreakIncludesToday(t *testing.T) {
	habit := habitWith("2026-03-08", "2026-03-09", "2026-03-10")

	if got := Streak(habit, "2026-03-10"); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	// Missing 2026-03-09 means only today counts.
	habit := habitWith("2026-03-07", "2026-03-08", "2026-03-10")

	if got := Streak(habit, "2026-03-10"); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}

func TestStreakZeroCases(t *testing.T) {
	if got := Streak(habitWith(), "2026-03-10"); got != 0 {
		t.Errorf("empty history: Streak = %d, want 0", got)
	}

	// Last completion two days ago: the streak is over.
	if got := Streak(habitWith("2026-03-08"), "2026-03-10"); got != 0 {
		t.Errorf("stale history: Streak = %d, want 0", got)
	}
}

func TestStreakIgnoresInsertionOrder(t *testing.T) {
	habit := habitWith("2026-03-10", "2026-03-08", "2026-03-09")

	if got := Streak(habit, "2026-03-10"); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestLongestStreak(t *testing.T) {
	habit := habitWith(
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04", // run of 4
		"2026-02-10", "2026-02-11", // run of 2
		"2026-03-01", // run of 1
	)

	if got := LongestStreak(habit); got != 4 {
		t.Errorf("LongestStreak = %d, want 4", got)
	}

	if got := LongestStreak(habitWith()); got != 0 {
		t.Errorf("empty history: LongestStreak = %d, want 0", got)
	}
}

func TestCompletionRate(t *testing.T) {
	habit := habitWith("2026-03-10", "2026-03-12", "2026-03-14", "2026-02-01")

	// 3 of the 7 days in the window; the February date is outside it.
	got := CompletionRate(habit, "2026-03-09", "2026-03-15")
	want := 3.0 / 7.0 * 100
	if !almostEqual(got, want) {
		t.Errorf("CompletionRate = %f, want %f", got, want)
	}

	if got := CompletionRate(habit, "2026-03-15", "2026-03-09"); got != 0 {
		t.Errorf("reversed window: CompletionRate = %f, want 0", got)
	}

	full := habitWith("2026-03-09", "2026-03-10", "2026-03-11")
	if got := CompletionRate(full, "2026-03-09", "2026-03-11"); got != 100 {
		t.Errorf("full window: CompletionRate = %f, want 100", got)
	}
}
