package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/analytics"
	"github.com/julianstephens/daybook/internal/models"
)

// AddHabit creates a habit with an empty completion history.
func (s *Store) AddHabit(name, icon string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, fmt.Errorf("habit name is required")
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           name,
		Icon:           icon,
		CompletedDates: []string{},
		CreatedAt:      time.Now(),
	}

	s.mu.Lock()
	s.habits[habit.ID] = habit
	s.mu.Unlock()
	s.commit()

	return habit, nil
}

// DeleteHabit removes the habit and its completion history.
func (s *Store) DeleteHabit(id string) error {
	s.mu.Lock()
	if _, ok := s.habits[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("habit not found: %s", id)
	}
	delete(s.habits, id)
	s.mu.Unlock()
	s.commit()

	return nil
}

// ToggleHabitCompletion adds the day to the habit's completion set if
// absent, removes it if present. The streak is always recomputed from
// the full date set rather than adjusted by one, so toggles applied
// out of chronological order cannot desynchronize it.
func (s *Store) ToggleHabitCompletion(id, day string) (models.Habit, error) {
	day = s.normalizeDay(day)

	s.mu.Lock()
	habit, ok := s.habits[id]
	if !ok {
		s.mu.Unlock()
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}

	if habit.CompletedOn(day) {
		dates := make([]string, 0, len(habit.CompletedDates)-1)
		for _, d := range habit.CompletedDates {
			if d != day {
				dates = append(dates, d)
			}
		}
		habit.CompletedDates = dates
	} else {
		habit.CompletedDates = append(habit.CompletedDates, day)
	}

	habit.Streak = recomputeStreak(habit, s.today())
	s.habits[id] = habit
	s.mu.Unlock()
	s.commit()

	return habit, nil
}

// Habit returns a habit by id.
func (s *Store) Habit(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, ok := s.habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	return habit, nil
}

// HabitByName returns a habit by its exact name.
func (s *Store) HabitByName(name string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, habit := range s.habits {
		if habit.Name == name {
			return habit, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", name)
}

// Habits returns all habits ordered by creation time.
func (s *Store) Habits() []models.Habit {
	return s.Snapshot().Habits
}

func recomputeStreak(habit models.Habit, today string) int {
	return analytics.Streak(habit, today)
}
