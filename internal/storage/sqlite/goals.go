package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/models"
)

func (s *Store) loadGoals() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, progress, notes, created_at
		FROM goals ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.Goal{}
	index := map[string]int{}
	for rows.Next() {
		var g models.Goal
		var notes sql.NullString
		var createdAt string

		if err := rows.Scan(&g.ID, &g.Title, &g.Progress, &notes, &createdAt); err != nil {
			return nil, err
		}

		if notes.Valid {
			g.Notes = notes.String
		}
		g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for goal %s: %w", g.ID, err)
		}

		index[g.ID] = len(goals)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// position preserves the order of the weekly series
	points, err := s.db.Query(`
		SELECT goal_id, week_label, value
		FROM goal_progress ORDER BY goal_id, position`)
	if err != nil {
		return nil, err
	}
	defer points.Close()

	for points.Next() {
		var goalID string
		var point models.WeeklyPoint
		if err := points.Scan(&goalID, &point.WeekLabel, &point.Value); err != nil {
			return nil, err
		}
		if i, ok := index[goalID]; ok {
			goals[i].WeeklyProgress = append(goals[i].WeeklyProgress, point)
		}
	}

	return goals, points.Err()
}

func saveGoals(tx *sql.Tx, goals []models.Goal) error {
	if _, err := tx.Exec(`DELETE FROM goals`); err != nil {
		return fmt.Errorf("failed to clear goals: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM goal_progress`); err != nil {
		return fmt.Errorf("failed to clear goal progress: %w", err)
	}

	for _, g := range goals {
		var notes sql.NullString
		if g.Notes != "" {
			notes = sql.NullString{String: g.Notes, Valid: true}
		}

		_, err := tx.Exec(`
			INSERT INTO goals (id, title, progress, notes, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.Progress, notes, g.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert goal %s: %w", g.ID, err)
		}

		for i, point := range g.WeeklyProgress {
			_, err := tx.Exec(`
				INSERT INTO goal_progress (goal_id, position, week_label, value)
				VALUES (?, ?, ?, ?)`,
				g.ID, i, point.WeekLabel, point.Value)
			if err != nil {
				return fmt.Errorf("failed to insert progress point for goal %s: %w", g.ID, err)
			}
		}
	}

	return nil
}

func (s *Store) loadProfile() (models.UserProfile, error) {
	row := s.db.QueryRow(`SELECT age, height_cm, weight_kg FROM profile WHERE id = 1`)

	var p models.UserProfile
	err := row.Scan(&p.Age, &p.HeightCm, &p.WeightKg)
	if err == sql.ErrNoRows {
		return models.UserProfile{}, nil
	}
	return p, err
}

func saveProfile(tx *sql.Tx, profile models.UserProfile) error {
	_, err := tx.Exec(`
		INSERT INTO profile (id, age, height_cm, weight_kg)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			age = excluded.age,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg`,
		profile.Age, profile.HeightCm, profile.WeightKg)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
