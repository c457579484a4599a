package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
)

// AddGoal creates a goal with zero progress.
func (s *Store) AddGoal(title, notes string) (models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Goal{}, fmt.Errorf("goal title is required")
	}

	goal := models.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Notes:     notes,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.goals[goal.ID] = goal
	s.mu.Unlock()
	s.commit()

	return goal, nil
}

// UpdateGoal merges new progress and notes into the goal. Progress is
// clamped to [0, 100]; notes replace the previous value only when
// non-empty.
func (s *Store) UpdateGoal(id string, progress int, notes string) (models.Goal, error) {
	s.mu.Lock()
	goal, ok := s.goals[id]
	if !ok {
		s.mu.Unlock()
		return models.Goal{}, fmt.Errorf("goal not found: %s", id)
	}

	goal.SetProgress(progress)
	if strings.TrimSpace(notes) != "" {
		goal.Notes = notes
	}
	s.goals[id] = goal
	s.mu.Unlock()
	s.commit()

	return goal, nil
}

// RecordGoalWeek appends a point to the goal's weekly progress series,
// replacing the value if the week is already recorded.
func (s *Store) RecordGoalWeek(id, weekLabel string, value int) (models.Goal, error) {
	s.mu.Lock()
	goal, ok := s.goals[id]
	if !ok {
		s.mu.Unlock()
		return models.Goal{}, fmt.Errorf("goal not found: %s", id)
	}

	value = models.ClampInt(value, 0, 100)
	replaced := false
	for i, point := range goal.WeeklyProgress {
		if point.WeekLabel == weekLabel {
			goal.WeeklyProgress[i].Value = value
			replaced = true
			break
		}
	}
	if !replaced {
		goal.WeeklyProgress = append(goal.WeeklyProgress, models.WeeklyPoint{WeekLabel: weekLabel, Value: value})
	}
	s.goals[id] = goal
	s.mu.Unlock()
	s.commit()

	return goal, nil
}

// Goal returns a goal by id.
func (s *Store) Goal(id string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[id]
	if !ok {
		return models.Goal{}, fmt.Errorf("goal not found: %s", id)
	}
	return goal, nil
}

// Goals returns all goals ordered by creation time.
func (s *Store) Goals() []models.Goal {
	return s.Snapshot().Goals
}
