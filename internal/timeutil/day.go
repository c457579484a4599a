package timeutil

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
)

// Day values are calendar-day strings in YYYY-MM-DD format. All entity
// dates use this representation so that map keys and SQL natural keys
// compare and sort lexicographically in chronological order.

// Today returns the current calendar day in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// FormatDay formats a time as a calendar-day string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a calendar-day string.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t, nil
}

// IsValidDay reports whether the string is a well-formed calendar day.
func IsValidDay(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil
}

// AddDays returns the day shifted by n calendar days.
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return FormatDay(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the number of calendar days from start to end,
// inclusive of both endpoints. Returns 0 if either day is malformed or
// end precedes start.
func DaysBetween(start, end string) int {
	s, err := ParseDay(start)
	if err != nil {
		return 0
	}
	e, err := ParseDay(end)
	if err != nil {
		return 0
	}
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// StartOfWeek returns the Monday of the week containing the given day.
func StartOfWeek(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return FormatDay(t.AddDate(0, 0, -offset)), nil
}

// WeekLabel returns the display label for the week containing the given
// day, derived from that week's Monday.
func WeekLabel(day string) (string, error) {
	monday, err := StartOfWeek(day)
	if err != nil {
		return "", err
	}
	t, err := ParseDay(monday)
	if err != nil {
		return "", err
	}
	return t.Format(constants.WeekLabelFormat), nil
}
