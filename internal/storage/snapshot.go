package storage

import (
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

// Snapshot is the full durable state of the application: every entity
// collection plus a schema version. Both storage variants load into
// and save from this one shape.
type Snapshot struct {
	Version        int                   `json:"version"`
	Tasks          []models.Task         `json:"tasks"`
	Habits         []models.Habit        `json:"habits"`
	JournalEntries []models.JournalEntry `json:"journal_entries"`
	DailyLogs      []models.DailyLog     `json:"daily_logs"`
	Trackers       []models.DailyTracker `json:"trackers"`
	Goals          []models.Goal         `json:"goals"`
	Profile        models.UserProfile    `json:"profile"`
}

// NewSnapshot returns an empty snapshot at the current schema version.
// Missing or corrupt durable data degrades to this default.
func NewSnapshot() Snapshot {
	return Snapshot{
		Version:        constants.SnapshotVersion,
		Tasks:          []models.Task{},
		Habits:         []models.Habit{},
		JournalEntries: []models.JournalEntry{},
		DailyLogs:      []models.DailyLog{},
		Trackers:       []models.DailyTracker{},
		Goals:          []models.Goal{},
	}
}
