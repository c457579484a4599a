// Package store holds all entity collections in memory and is the
// single writer for every mutation. Commands validate or clamp their
// input, apply it, notify subscribers synchronously and schedule a
// debounced persistence write; they never block on I/O.
package store

import (
	"sort"
	"sync"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/timeutil"
)

// Saver receives the snapshot after every committed mutation. The
// production implementation is storage.AutoSaver.
type Saver interface {
	ScheduleSave(storage.Snapshot)
}

// Store owns the entity collections. It is explicitly constructed and
// passed to consumers; there is no ambient global instance.
type Store struct {
	mu sync.Mutex

	tasks    map[string]models.Task
	habits   map[string]models.Habit
	entries  []models.JournalEntry
	logs     []models.DailyLog
	trackers map[string]models.DailyTracker // keyed by date
	goals    map[string]models.Goal
	profile  models.UserProfile

	listeners  map[int]func()
	nextListen int

	saver Saver
	today func() string
}

// New builds a store from a loaded snapshot. Cached habit streaks are
// reconciled against the authoritative recomputation from the date
// sets, so a drifted persisted counter can never survive a restart.
func New(snap storage.Snapshot, saver Saver) *Store {
	s := &Store{
		tasks:     make(map[string]models.Task, len(snap.Tasks)),
		habits:    make(map[string]models.Habit, len(snap.Habits)),
		trackers:  make(map[string]models.DailyTracker, len(snap.Trackers)),
		goals:     make(map[string]models.Goal, len(snap.Goals)),
		listeners: make(map[int]func()),
		saver:     saver,
		today:     timeutil.Today,
	}

	for _, task := range snap.Tasks {
		task.Normalize()
		s.tasks[task.ID] = task
	}
	for _, habit := range snap.Habits {
		habit.Streak = recomputeStreak(habit, s.today())
		s.habits[habit.ID] = habit
	}
	for _, tracker := range snap.Trackers {
		tracker.Normalize()
		s.trackers[tracker.Date] = tracker
	}
	for _, goal := range snap.Goals {
		goal.SetProgress(goal.Progress)
		s.goals[goal.ID] = goal
	}
	s.entries = append(s.entries, snap.JournalEntries...)
	s.logs = append(s.logs, snap.DailyLogs...)
	s.profile = snap.Profile

	return s
}

// Subscribe registers a listener invoked synchronously after each
// committed mutation. The returned function unsubscribes it.
func (s *Store) Subscribe(listener func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListen
	s.nextListen++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Snapshot returns a copy of the full entity state in a stable order.
func (s *Store) Snapshot() storage.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Profile returns the user profile.
func (s *Store) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SaveProfile replaces the user profile.
func (s *Store) SaveProfile(profile models.UserProfile) {
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	s.commit()
}

// commit notifies subscribers and hands the latest snapshot to the
// saver. Listeners run outside the lock so they may read the store.
func (s *Store) commit() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l()
	}
	if s.saver != nil {
		s.saver.ScheduleSave(snap)
	}
}

func (s *Store) snapshotLocked() storage.Snapshot {
	snap := storage.NewSnapshot()

	snap.Tasks = make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		snap.Tasks = append(snap.Tasks, task)
	}
	sortTasks(snap.Tasks)

	snap.Habits = make([]models.Habit, 0, len(s.habits))
	for _, habit := range s.habits {
		snap.Habits = append(snap.Habits, habit)
	}
	sort.Slice(snap.Habits, func(i, j int) bool {
		if !snap.Habits[i].CreatedAt.Equal(snap.Habits[j].CreatedAt) {
			return snap.Habits[i].CreatedAt.Before(snap.Habits[j].CreatedAt)
		}
		return snap.Habits[i].ID < snap.Habits[j].ID
	})

	snap.JournalEntries = append(snap.JournalEntries, s.entries...)
	snap.DailyLogs = append(snap.DailyLogs, s.logs...)

	snap.Trackers = make([]models.DailyTracker, 0, len(s.trackers))
	for _, tracker := range s.trackers {
		snap.Trackers = append(snap.Trackers, tracker)
	}
	sort.Slice(snap.Trackers, func(i, j int) bool {
		return snap.Trackers[i].Date < snap.Trackers[j].Date
	})

	snap.Goals = make([]models.Goal, 0, len(s.goals))
	for _, goal := range s.goals {
		// RecordGoalWeek rewrites points in place; the snapshot keeps
		// its own copy so the saver never observes a later mutation.
		goal.WeeklyProgress = append([]models.WeeklyPoint(nil), goal.WeeklyProgress...)
		snap.Goals = append(snap.Goals, goal)
	}
	sort.Slice(snap.Goals, func(i, j int) bool {
		if !snap.Goals[i].CreatedAt.Equal(snap.Goals[j].CreatedAt) {
			return snap.Goals[i].CreatedAt.Before(snap.Goals[j].CreatedAt)
		}
		return snap.Goals[i].ID < snap.Goals[j].ID
	})

	snap.Profile = s.profile
	return snap
}

func sortTasks(tasks []models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Date != tasks[j].Date {
			return tasks[i].Date < tasks[j].Date
		}
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// normalizeDay falls back to today when the given day is malformed.
// Out-of-range input is normalized, not rejected.
func (s *Store) normalizeDay(day string) string {
	if timeutil.IsValidDay(day) {
		return day
	}
	return s.today()
}
