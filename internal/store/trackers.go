package store

import (
	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
)

// SaveDailyTracker upserts the tracker for its date. A second save for
// the same date replaces the first; duplicate-date conflicts are
// resolved by last-write-wins, never by raising an error.
func (s *Store) SaveDailyTracker(tracker models.DailyTracker) (models.DailyTracker, error) {
	tracker.Date = s.normalizeDay(tracker.Date)
	tracker.Normalize()

	s.mu.Lock()
	if existing, ok := s.trackers[tracker.Date]; ok {
		tracker.ID = existing.ID
	} else if tracker.ID == "" {
		tracker.ID = uuid.New().String()
	}
	s.trackers[tracker.Date] = tracker
	s.mu.Unlock()
	s.commit()

	return tracker, nil
}

// Tracker returns the tracker for the given date, if one exists.
func (s *Store) Tracker(date string) (models.DailyTracker, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracker, ok := s.trackers[date]
	return tracker, ok
}

// Trackers returns all trackers ordered by date.
func (s *Store) Trackers() []models.DailyTracker {
	return s.Snapshot().Trackers
}
