package analytics

import (
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/timeutil"
)

// Streak returns the count of consecutive completed calendar days
// ending at today, walking backward from today. A still-active streak
// tolerates today being incomplete so far: if today is absent from the
// date set, the walk starts at yesterday instead. This is the
// authoritative definition; any cached counter must agree with it.
func Streak(habit models.Habit, today string) int {
	completed := dateSet(habit.CompletedDates)
	if len(completed) == 0 {
		return 0
	}

	day := today
	if !completed[day] {
		prev, err := timeutil.AddDays(day, -1)
		if err != nil {
			return 0
		}
		day = prev
	}

	streak := 0
	for completed[day] {
		streak++
		prev, err := timeutil.AddDays(day, -1)
		if err != nil {
			break
		}
		day = prev
	}
	return streak
}

// LongestStreak returns the habit's longest-ever run of consecutive
// completed days.
func LongestStreak(habit models.Habit) int {
	completed := dateSet(habit.CompletedDates)

	longest := 0
	for day := range completed {
		// Only count from the start of each run.
		prev, err := timeutil.AddDays(day, -1)
		if err != nil || completed[prev] {
			continue
		}

		length := 0
		for completed[day] {
			length++
			next, err := timeutil.AddDays(day, 1)
			if err != nil {
				break
			}
			day = next
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}

// CompletionRate returns the percentage of days in [start, end] on
// which the habit was completed. A window of zero length yields 0.
func CompletionRate(habit models.Habit, start, end string) float64 {
	window := timeutil.DaysBetween(start, end)
	if window == 0 {
		return 0
	}

	completed := 0
	for _, day := range habit.CompletedDates {
		if day >= start && day <= end {
			completed++
		}
	}
	return float64(completed) / float64(window) * 100
}

func dateSet(dates []string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}
