package models

import "github.com/julianstephens/daybook/internal/constants"

// DailyTracker records one day's discipline checklist, ratings and
// metrics. At most one tracker exists per calendar date; saving again
// for the same date replaces the earlier record.
type DailyTracker struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD format

	// Checklist
	Meditation              bool `json:"meditation"`
	NoJunkFood              bool `json:"no_junk_food"`
	NoMusic                 bool `json:"no_music"`
	NoScreenTimeLimitBreach bool `json:"no_screen_time_limit_breach"`
	Workout                 bool `json:"workout"`

	// Ratings, 0-10
	Energy int `json:"energy"`
	Focus  int `json:"focus"`
	Mood   int `json:"mood"`
	Stress int `json:"stress"`

	// Metrics
	ScreenTimeHours float64 `json:"screen_time_hours"`
	SleepHours      float64 `json:"sleep_hours"`
	SocialMediaMin  int     `json:"social_media_min"`
	WaterLiters     float64 `json:"water_liters"`
	StudyHours      float64 `json:"study_hours"`

	WorkoutType        string `json:"workout_type,omitempty"`
	WorkoutDurationMin int    `json:"workout_duration_min,omitempty"`

	PhotoRefs  []string `json:"photo_refs,omitempty"`
	Reflection string   `json:"reflection,omitempty"`
	Gratitude  string   `json:"gratitude,omitempty"`
}

// Checklist returns the boolean checklist fields in a fixed order.
func (t *DailyTracker) Checklist() [constants.TrackerChecklistSize]bool {
	return [constants.TrackerChecklistSize]bool{
		t.Meditation,
		t.NoJunkFood,
		t.NoMusic,
		t.NoScreenTimeLimitBreach,
		t.Workout,
	}
}

// Ratings returns the 0-10 rating fields in a fixed order.
func (t *DailyTracker) Ratings() [4]int {
	return [4]int{t.Energy, t.Focus, t.Mood, t.Stress}
}

// Normalize clamps ratings and metrics to their legal ranges.
func (t *DailyTracker) Normalize() {
	t.Energy = ClampInt(t.Energy, constants.RatingMin, constants.RatingMax)
	t.Focus = ClampInt(t.Focus, constants.RatingMin, constants.RatingMax)
	t.Mood = ClampInt(t.Mood, constants.RatingMin, constants.RatingMax)
	t.Stress = ClampInt(t.Stress, constants.RatingMin, constants.RatingMax)

	t.ScreenTimeHours = ClampFloat(t.ScreenTimeHours, 0, 24)
	t.SleepHours = ClampFloat(t.SleepHours, 0, 24)
	t.StudyHours = ClampFloat(t.StudyHours, 0, 24)
	if t.SocialMediaMin < 0 {
		t.SocialMediaMin = 0
	}
	if t.WaterLiters < 0 {
		t.WaterLiters = 0
	}
	if t.WorkoutDurationMin < 0 {
		t.WorkoutDurationMin = 0
	}
}
