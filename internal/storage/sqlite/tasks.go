package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/models"
)

func (s *Store) loadTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, time_estimate_min, progress, date, completed, carried_forward, forwarded_from, created_at
		FROM tasks ORDER BY date, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var createdAt string
		var forwardedFrom sql.NullString

		if err := rows.Scan(&t.ID, &t.Title, &t.TimeEstimateMin, &t.Progress, &t.Date,
			&t.Completed, &t.CarriedForward, &forwardedFrom, &createdAt); err != nil {
			return nil, err
		}

		if forwardedFrom.Valid {
			t.ForwardedFrom = forwardedFrom.String
		}
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for task %s: %w", t.ID, err)
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func saveTasks(tx *sql.Tx, tasks []models.Task) error {
	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	for _, t := range tasks {
		var forwardedFrom sql.NullString
		if t.ForwardedFrom != "" {
			forwardedFrom = sql.NullString{String: t.ForwardedFrom, Valid: true}
		}

		_, err := tx.Exec(`
			INSERT INTO tasks (id, title, time_estimate_min, progress, date, completed, carried_forward, forwarded_from, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.TimeEstimateMin, t.Progress, t.Date,
			t.Completed, t.CarriedForward, forwardedFrom, t.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert task %s: %w", t.ID, err)
		}
	}

	return nil
}
