package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/timeutil"
)

// AddJournalEntry appends an immutable journal entry stamped with the
// client clock. Unknown entry types normalize to text.
func (s *Store) AddJournalEntry(entryType models.EntryType, content string, tags []string) (models.JournalEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.JournalEntry{}, fmt.Errorf("journal content is required")
	}

	switch entryType {
	case models.EntryTypeText, models.EntryTypeVoice, models.EntryTypeImage:
	default:
		entryType = models.EntryTypeText
	}

	now := time.Now()
	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Type:      entryType,
		Content:   content,
		Tags:      uniqueTags(tags),
		Timestamp: now,
		Date:      timeutil.FormatDay(now),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	s.commit()

	return entry, nil
}

// DeleteJournalEntry removes an entry; deletion is the only mutation
// journal entries permit.
func (s *Store) DeleteJournalEntry(id string) error {
	s.mu.Lock()
	found := false
	entries := make([]models.JournalEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.ID == id {
			found = true
			continue
		}
		entries = append(entries, entry)
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("journal entry not found: %s", id)
	}
	s.entries = entries
	s.mu.Unlock()
	s.commit()

	return nil
}

// JournalEntries returns all entries in creation order.
func (s *Store) JournalEntries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.JournalEntry{}, s.entries...)
}

// AddLog appends a free-text daily log line.
func (s *Store) AddLog(text string) (models.DailyLog, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.DailyLog{}, fmt.Errorf("log text is required")
	}

	log := models.DailyLog{
		ID:        uuid.New().String(),
		Text:      text,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.logs = append(s.logs, log)
	s.mu.Unlock()
	s.commit()

	return log, nil
}

// Logs returns all daily logs in creation order.
func (s *Store) Logs() []models.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DailyLog{}, s.logs...)
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := []string{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
