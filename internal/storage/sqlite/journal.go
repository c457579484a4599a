package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/models"
)

func (s *Store) loadJournal() ([]models.JournalEntry, []models.DailyLog, error) {
	rows, err := s.db.Query(`
		SELECT id, type, content, tags, timestamp, date
		FROM journal_entries ORDER BY timestamp`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		var entryType, timestamp string
		var tags sql.NullString

		if err := rows.Scan(&e.ID, &entryType, &e.Content, &tags, &timestamp, &e.Date); err != nil {
			return nil, nil, err
		}

		e.Type = models.EntryType(entryType)
		if tags.Valid && tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &e.Tags); err != nil {
				return nil, nil, fmt.Errorf("failed to parse tags for entry %s: %w", e.ID, err)
			}
		}
		e.Timestamp, err = time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse timestamp for entry %s: %w", e.ID, err)
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	logRows, err := s.db.Query(`SELECT id, text, timestamp FROM daily_logs ORDER BY timestamp`)
	if err != nil {
		return nil, nil, err
	}
	defer logRows.Close()

	logs := []models.DailyLog{}
	for logRows.Next() {
		var l models.DailyLog
		var timestamp string

		if err := logRows.Scan(&l.ID, &l.Text, &timestamp); err != nil {
			return nil, nil, err
		}
		l.Timestamp, err = time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse timestamp for log %s: %w", l.ID, err)
		}

		logs = append(logs, l)
	}

	return entries, logs, logRows.Err()
}

func saveJournal(tx *sql.Tx, entries []models.JournalEntry, logs []models.DailyLog) error {
	if _, err := tx.Exec(`DELETE FROM journal_entries`); err != nil {
		return fmt.Errorf("failed to clear journal entries: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM daily_logs`); err != nil {
		return fmt.Errorf("failed to clear daily logs: %w", err)
	}

	for _, e := range entries {
		var tags sql.NullString
		if len(e.Tags) > 0 {
			data, err := json.Marshal(e.Tags)
			if err != nil {
				return fmt.Errorf("failed to serialize tags for entry %s: %w", e.ID, err)
			}
			tags = sql.NullString{String: string(data), Valid: true}
		}

		_, err := tx.Exec(`
			INSERT INTO journal_entries (id, type, content, tags, timestamp, date)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, string(e.Type), e.Content, tags, e.Timestamp.Format(time.RFC3339), e.Date)
		if err != nil {
			return fmt.Errorf("failed to insert journal entry %s: %w", e.ID, err)
		}
	}

	for _, l := range logs {
		_, err := tx.Exec(`
			INSERT INTO daily_logs (id, text, timestamp)
			VALUES (?, ?, ?)`,
			l.ID, l.Text, l.Timestamp.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert daily log %s: %w", l.ID, err)
		}
	}

	return nil
}
