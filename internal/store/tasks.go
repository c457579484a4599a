package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
)

// CreateTask adds a new task for the given day. A blank title is the
// one validation failure that rejects rather than clamps.
func (s *Store) CreateTask(title string, timeEstimateMin int, date string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, fmt.Errorf("task title is required")
	}

	task := models.Task{
		ID:              uuid.New().String(),
		Title:           title,
		TimeEstimateMin: timeEstimateMin,
		Date:            s.normalizeDay(date),
		CreatedAt:       time.Now(),
	}
	task.Normalize()

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()
	s.commit()

	return task, nil
}

// UpdateTaskProgress clamps progress to [0, 100] and sets Completed
// iff the clamped value is 100.
func (s *Store) UpdateTaskProgress(id string, progress int) (models.Task, error) {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return models.Task{}, fmt.Errorf("task not found: %s", id)
	}
	task.SetProgress(progress)
	s.tasks[id] = task
	s.mu.Unlock()
	s.commit()

	return task, nil
}

// DeleteTask removes the task. There are no cascading effects.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	if _, ok := s.tasks[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	delete(s.tasks, id)
	s.mu.Unlock()
	s.commit()

	return nil
}

// ForwardTask creates the carried-forward copy of an incomplete task.
// It is idempotent per source: if a forwarded copy already exists, that
// copy is returned and no new task is created. The source task is
// retained untouched (audit-trail policy).
func (s *Store) ForwardTask(sourceID, targetDay string) (models.Task, bool, error) {
	targetDay = s.normalizeDay(targetDay)

	s.mu.Lock()
	source, ok := s.tasks[sourceID]
	if !ok {
		s.mu.Unlock()
		return models.Task{}, false, fmt.Errorf("task not found: %s", sourceID)
	}
	if source.Completed {
		s.mu.Unlock()
		return models.Task{}, false, fmt.Errorf("task already completed: %s", sourceID)
	}

	for _, task := range s.tasks {
		if task.ForwardedFrom == sourceID {
			s.mu.Unlock()
			return task, false, nil
		}
	}

	forwarded := models.Task{
		ID:              uuid.New().String(),
		Title:           source.Title,
		TimeEstimateMin: source.TimeEstimateMin,
		Date:            targetDay,
		CarriedForward:  true,
		ForwardedFrom:   sourceID,
		CreatedAt:       time.Now(),
	}
	forwarded.Normalize()
	s.tasks[forwarded.ID] = forwarded
	s.mu.Unlock()
	s.commit()

	return forwarded, true, nil
}

// Task returns a task by id.
func (s *Store) Task(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("task not found: %s", id)
	}
	return task, nil
}

// Tasks returns all tasks ordered by date, then creation time.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sortTasks(tasks)
	return tasks
}

// TasksForDay returns the tasks dated on the given day.
func (s *Store) TasksForDay(day string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := []models.Task{}
	for _, task := range s.tasks {
		if task.Date == day {
			tasks = append(tasks, task)
		}
	}
	sortTasks(tasks)
	return tasks
}
