package constants

import "time"

const (
	AppName          = "daybook"
	DefaultStorePath = "~/.config/daybook/daybook.db"
	Version          = "v0.2.0"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// WeekLabelFormat labels a goal's weekly progress point by the Monday of that week
	WeekLabelFormat = "Jan 2"

	// SnapshotVersion is the current on-disk snapshot schema version
	SnapshotVersion = 1

	// SaveDebounce is the window within which repeated save requests coalesce
	SaveDebounce = 300 * time.Millisecond

	// RatingMin and RatingMax bound the daily tracker's 0-10 ratings
	RatingMin = 0
	RatingMax = 10

	// ProgressMin and ProgressMax bound task and goal progress
	ProgressMin = 0
	ProgressMax = 100

	// TrackerChecklistSize is the number of boolean checklist fields on a daily tracker
	TrackerChecklistSize = 5

	// DisciplineScoreMax caps the composite discipline score
	DisciplineScoreMax = 10
)
