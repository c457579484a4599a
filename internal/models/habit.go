package models

import "time"

// Habit represents a recurring practice to track.
//
// CompletedDates is the source of truth for all streak math: Streak is
// a cached display value recomputed from the date set on every
// mutation and on load, never adjusted incrementally.
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon,omitempty"`
	CompletedDates []string  `json:"completed_dates"` // YYYY-MM-DD, unique, unordered
	Streak         int       `json:"streak"`
	CreatedAt      time.Time `json:"created_at"`
}

// CompletedOn reports whether the habit was completed on the given day.
func (h *Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
