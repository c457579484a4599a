package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/daybook/internal/logger"
)

// JSONStore is the blob-store variant: the whole snapshot serialized
// as a single JSON document, replaced on every save.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(NewSnapshot())
}

// Load reads the snapshot document. A missing or unparseable file
// degrades to an empty default snapshot; the caller is never blocked
// by a read failure.
func (s *JSONStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read snapshot, starting empty", "path", s.path, "error", err)
		}
		return NewSnapshot(), nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("Failed to parse snapshot, starting empty", "path", s.path, "error", err)
		return NewSnapshot(), nil
	}

	normalize(&snap)
	return snap, nil
}

func (s *JSONStore) Save(snap Snapshot) error {
	snap.Version = NewSnapshot().Version

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Write to a sibling temp file and rename so a crash mid-write
	// cannot leave a truncated document behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}

// normalize ensures collections are non-nil so callers can range and
// append without nil checks.
func normalize(snap *Snapshot) {
	defaults := NewSnapshot()
	if snap.Version == 0 {
		snap.Version = defaults.Version
	}
	if snap.Tasks == nil {
		snap.Tasks = defaults.Tasks
	}
	if snap.Habits == nil {
		snap.Habits = defaults.Habits
	}
	if snap.JournalEntries == nil {
		snap.JournalEntries = defaults.JournalEntries
	}
	if snap.DailyLogs == nil {
		snap.DailyLogs = defaults.DailyLogs
	}
	if snap.Trackers == nil {
		snap.Trackers = defaults.Trackers
	}
	if snap.Goals == nil {
		snap.Goals = defaults.Goals
	}
}
