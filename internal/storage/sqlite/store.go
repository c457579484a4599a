package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id                TEXT PRIMARY KEY,
	title             TEXT NOT NULL,
	time_estimate_min INTEGER NOT NULL,
	progress          INTEGER NOT NULL,
	date              TEXT NOT NULL,
	completed         INTEGER NOT NULL,
	carried_forward   INTEGER NOT NULL,
	forwarded_from    TEXT,
	created_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habits (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	icon       TEXT,
	streak     INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_completions (
	habit_id TEXT NOT NULL,
	day      TEXT NOT NULL,
	PRIMARY KEY (habit_id, day)
);

CREATE TABLE IF NOT EXISTS journal_entries (
	id        TEXT PRIMARY KEY,
	type      TEXT NOT NULL,
	content   TEXT NOT NULL,
	tags      TEXT,
	timestamp TEXT NOT NULL,
	date      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_logs (
	id        TEXT PRIMARY KEY,
	text      TEXT NOT NULL,
	timestamp TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_trackers (
	id                          TEXT NOT NULL,
	date                        TEXT PRIMARY KEY,
	meditation                  INTEGER NOT NULL,
	no_junk_food                INTEGER NOT NULL,
	no_music                    INTEGER NOT NULL,
	no_screen_time_limit_breach INTEGER NOT NULL,
	workout                     INTEGER NOT NULL,
	energy                      INTEGER NOT NULL,
	focus                       INTEGER NOT NULL,
	mood                        INTEGER NOT NULL,
	stress                      INTEGER NOT NULL,
	screen_time_hours           REAL NOT NULL,
	sleep_hours                 REAL NOT NULL,
	social_media_min            INTEGER NOT NULL,
	water_liters                REAL NOT NULL,
	study_hours                 REAL NOT NULL,
	workout_type                TEXT,
	workout_duration_min        INTEGER NOT NULL,
	photo_refs                  TEXT,
	reflection                  TEXT,
	gratitude                   TEXT
);

CREATE TABLE IF NOT EXISTS goals (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	progress   INTEGER NOT NULL,
	notes      TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goal_progress (
	goal_id    TEXT NOT NULL,
	position   INTEGER NOT NULL,
	week_label TEXT NOT NULL,
	value      INTEGER NOT NULL,
	PRIMARY KEY (goal_id, position)
);

CREATE TABLE IF NOT EXISTS profile (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	age       INTEGER NOT NULL,
	height_cm REAL NOT NULL,
	weight_kg REAL NOT NULL
);
`

// Store is the relational variant of the persistence gateway: one
// table per entity type, habit completions keyed by (habit_id, day).
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.open()
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO meta (key, value) VALUES ('version', ?)
		ON CONFLICT(key) DO NOTHING`,
		fmt.Sprint(constants.SnapshotVersion))
	return err
}

// Load assembles a snapshot from the entity tables. Any failure
// degrades to an empty default snapshot so the caller never blocks on
// a storage error.
func (s *Store) Load() (storage.Snapshot, error) {
	if s.db == nil {
		if err := s.open(); err != nil {
			logger.Warn("Failed to open database, starting empty", "path", s.path, "error", err)
			return storage.NewSnapshot(), nil
		}
	}

	snap := storage.NewSnapshot()

	var err error
	if snap.Tasks, err = s.loadTasks(); err != nil {
		logger.Warn("Failed to load tasks, starting empty", "error", err)
		return storage.NewSnapshot(), nil
	}
	if snap.Habits, err = s.loadHabits(); err != nil {
		logger.Warn("Failed to load habits, starting empty", "error", err)
		return storage.NewSnapshot(), nil
	}
	if snap.JournalEntries, snap.DailyLogs, err = s.loadJournal(); err != nil {
		logger.Warn("Failed to load journal, starting empty", "error", err)
		return storage.NewSnapshot(), nil
	}
	if snap.Trackers, err = s.loadTrackers(); err != nil {
		logger.Warn("Failed to load trackers, starting empty", "error", err)
		return storage.NewSnapshot(), nil
	}
	if snap.Goals, err = s.loadGoals(); err != nil {
		logger.Warn("Failed to load goals, starting empty", "error", err)
		return storage.NewSnapshot(), nil
	}
	if snap.Profile, err = s.loadProfile(); err != nil {
		logger.Warn("Failed to load profile, starting empty", "error", err)
		return storage.NewSnapshot(), nil
	}

	return snap, nil
}

// Save replaces the durable state with the snapshot in one
// transaction: each table is cleared and re-inserted so a partial
// write can never be observed.
func (s *Store) Save(snap storage.Snapshot) error {
	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := saveTasks(tx, snap.Tasks); err != nil {
		return err
	}
	if err := saveHabits(tx, snap.Habits); err != nil {
		return err
	}
	if err := saveJournal(tx, snap.JournalEntries, snap.DailyLogs); err != nil {
		return err
	}
	if err := saveTrackers(tx, snap.Trackers); err != nil {
		return err
	}
	if err := saveGoals(tx, snap.Goals); err != nil {
		return err
	}
	if err := saveProfile(tx, snap.Profile); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}
