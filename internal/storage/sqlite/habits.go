package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/models"
)

func (s *Store) loadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, icon, streak, created_at
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	index := map[string]int{}
	for rows.Next() {
		var h models.Habit
		var icon sql.NullString
		var createdAt string

		if err := rows.Scan(&h.ID, &h.Name, &icon, &h.Streak, &createdAt); err != nil {
			return nil, err
		}

		if icon.Valid {
			h.Icon = icon.String
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}
		h.CompletedDates = []string{}

		index[h.ID] = len(habits)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	completions, err := s.db.Query(`SELECT habit_id, day FROM habit_completions ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer completions.Close()

	for completions.Next() {
		var habitID, day string
		if err := completions.Scan(&habitID, &day); err != nil {
			return nil, err
		}
		if i, ok := index[habitID]; ok {
			habits[i].CompletedDates = append(habits[i].CompletedDates, day)
		}
	}

	return habits, completions.Err()
}

func saveHabits(tx *sql.Tx, habits []models.Habit) error {
	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM habit_completions`); err != nil {
		return fmt.Errorf("failed to clear habit completions: %w", err)
	}

	for _, h := range habits {
		var icon sql.NullString
		if h.Icon != "" {
			icon = sql.NullString{String: h.Icon, Valid: true}
		}

		_, err := tx.Exec(`
			INSERT INTO habits (id, name, icon, streak, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			h.ID, h.Name, icon, h.Streak, h.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert habit %s: %w", h.ID, err)
		}

		for _, day := range h.CompletedDates {
			_, err := tx.Exec(`
				INSERT INTO habit_completions (habit_id, day)
				VALUES (?, ?)
				ON CONFLICT(habit_id, day) DO NOTHING`,
				h.ID, day)
			if err != nil {
				return fmt.Errorf("failed to insert completion for habit %s: %w", h.ID, err)
			}
		}
	}

	return nil
}
