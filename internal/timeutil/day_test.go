package timeutil

import "testing"

func TestAddDays(t *testing.T) {
	cases := []struct {
		day  string
		n    int
		want string
	}{
		{"2026-03-10", 1, "2026-03-11"},
		{"2026-03-10", -1, "2026-03-09"},
		{"2026-02-28", 1, "2026-03-01"},
		{"2026-01-01", -1, "2025-12-31"},
		{"2026-03-10", 0, "2026-03-10"},
	}

	for _, tc := range cases {
		got, err := AddDays(tc.day, tc.n)
		if err != nil {
			t.Fatalf("AddDays(%q, %d): %v", tc.day, tc.n, err)
		}
		if got != tc.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tc.day, tc.n, got, tc.want)
		}
	}

	if _, err := AddDays("not-a-day", 1); err == nil {
		t.Error("expected error for malformed day")
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2026-03-10", "2026-03-10", 1},
		{"2026-03-10", "2026-03-16", 7},
		{"2026-03-16", "2026-03-10", 0},
		{"bogus", "2026-03-10", 0},
		{"2026-03-10", "bogus", 0},
	}

	for _, tc := range cases {
		if got := DaysBetween(tc.start, tc.end); got != tc.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestIsValidDay(t *testing.T) {
	valid := []string{"2026-03-10", "2024-02-29"}
	for _, day := range valid {
		if !IsValidDay(day) {
			t.Errorf("IsValidDay(%q) = false, want true", day)
		}
	}

	invalid := []string{"", "2026-3-10", "03/10/2026", "2026-13-01", "2025-02-29"}
	for _, day := range invalid {
		if IsValidDay(day) {
			t.Errorf("IsValidDay(%q) = true, want false", day)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2026-08-24", "2026-08-24"}, // Monday maps to itself
		{"2026-08-28", "2026-08-24"}, // Friday
		{"2026-08-30", "2026-08-24"}, // Sunday belongs to the preceding Monday
	}

	for _, tc := range cases {
		got, err := StartOfWeek(tc.day)
		if err != nil {
			t.Fatalf("StartOfWeek(%q): %v", tc.day, err)
		}
		if got != tc.want {
			t.Errorf("StartOfWeek(%q) = %q, want %q", tc.day, got, tc.want)
		}
	}
}

func TestWeekLabel(t *testing.T) {
	got, err := WeekLabel("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Aug 24" {
		t.Errorf("WeekLabel = %q, want %q", got, "Aug 24")
	}
}
