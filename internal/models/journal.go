package models

import "time"

type EntryType string

const (
	EntryTypeText  EntryType = "text"
	EntryTypeVoice EntryType = "voice"
	EntryTypeImage EntryType = "image"
)

// JournalEntry is immutable once created; the only permitted mutation
// is deletion.
type JournalEntry struct {
	ID        string    `json:"id"`
	Type      EntryType `json:"type"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"` // YYYY-MM-DD format
}

// DailyLog is a lightweight append-only free-text note.
type DailyLog struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
