package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/daybook/internal/models"
)

func (s *Store) loadTrackers() ([]models.DailyTracker, error) {
	rows, err := s.db.Query(`
		SELECT id, date, meditation, no_junk_food, no_music, no_screen_time_limit_breach, workout,
			energy, focus, mood, stress,
			screen_time_hours, sleep_hours, social_media_min, water_liters, study_hours,
			workout_type, workout_duration_min, photo_refs, reflection, gratitude
		FROM daily_trackers ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trackers := []models.DailyTracker{}
	for rows.Next() {
		var t models.DailyTracker
		var workoutType, photoRefs, reflection, gratitude sql.NullString

		err := rows.Scan(&t.ID, &t.Date,
			&t.Meditation, &t.NoJunkFood, &t.NoMusic, &t.NoScreenTimeLimitBreach, &t.Workout,
			&t.Energy, &t.Focus, &t.Mood, &t.Stress,
			&t.ScreenTimeHours, &t.SleepHours, &t.SocialMediaMin, &t.WaterLiters, &t.StudyHours,
			&workoutType, &t.WorkoutDurationMin, &photoRefs, &reflection, &gratitude)
		if err != nil {
			return nil, err
		}

		if workoutType.Valid {
			t.WorkoutType = workoutType.String
		}
		if reflection.Valid {
			t.Reflection = reflection.String
		}
		if gratitude.Valid {
			t.Gratitude = gratitude.String
		}
		if photoRefs.Valid && photoRefs.String != "" {
			if err := json.Unmarshal([]byte(photoRefs.String), &t.PhotoRefs); err != nil {
				return nil, fmt.Errorf("failed to parse photo refs for tracker %s: %w", t.Date, err)
			}
		}

		trackers = append(trackers, t)
	}

	return trackers, rows.Err()
}

func saveTrackers(tx *sql.Tx, trackers []models.DailyTracker) error {
	if _, err := tx.Exec(`DELETE FROM daily_trackers`); err != nil {
		return fmt.Errorf("failed to clear daily trackers: %w", err)
	}

	for _, t := range trackers {
		var workoutType, photoRefs, reflection, gratitude sql.NullString
		if t.WorkoutType != "" {
			workoutType = sql.NullString{String: t.WorkoutType, Valid: true}
		}
		if t.Reflection != "" {
			reflection = sql.NullString{String: t.Reflection, Valid: true}
		}
		if t.Gratitude != "" {
			gratitude = sql.NullString{String: t.Gratitude, Valid: true}
		}
		if len(t.PhotoRefs) > 0 {
			data, err := json.Marshal(t.PhotoRefs)
			if err != nil {
				return fmt.Errorf("failed to serialize photo refs for tracker %s: %w", t.Date, err)
			}
			photoRefs = sql.NullString{String: string(data), Valid: true}
		}

		// The date primary key enforces at most one tracker per day.
		_, err := tx.Exec(`
			INSERT INTO daily_trackers (id, date, meditation, no_junk_food, no_music, no_screen_time_limit_breach, workout,
				energy, focus, mood, stress,
				screen_time_hours, sleep_hours, social_media_min, water_liters, study_hours,
				workout_type, workout_duration_min, photo_refs, reflection, gratitude)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(date) DO UPDATE SET
				id = excluded.id,
				meditation = excluded.meditation,
				no_junk_food = excluded.no_junk_food,
				no_music = excluded.no_music,
				no_screen_time_limit_breach = excluded.no_screen_time_limit_breach,
				workout = excluded.workout,
				energy = excluded.energy,
				focus = excluded.focus,
				mood = excluded.mood,
				stress = excluded.stress,
				screen_time_hours = excluded.screen_time_hours,
				sleep_hours = excluded.sleep_hours,
				social_media_min = excluded.social_media_min,
				water_liters = excluded.water_liters,
				study_hours = excluded.study_hours,
				workout_type = excluded.workout_type,
				workout_duration_min = excluded.workout_duration_min,
				photo_refs = excluded.photo_refs,
				reflection = excluded.reflection,
				gratitude = excluded.gratitude`,
			t.ID, t.Date, t.Meditation, t.NoJunkFood, t.NoMusic, t.NoScreenTimeLimitBreach, t.Workout,
			t.Energy, t.Focus, t.Mood, t.Stress,
			t.ScreenTimeHours, t.SleepHours, t.SocialMediaMin, t.WaterLiters, t.StudyHours,
			workoutType, t.WorkoutDurationMin, photoRefs, reflection, gratitude)
		if err != nil {
			return fmt.Errorf("failed to insert tracker for %s: %w", t.Date, err)
		}
	}

	return nil
}
