package storage

import (
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
)

// AutoSaver coalesces rapid save requests into a single durable write
// of the latest snapshot. Each ScheduleSave cancels any pending timer
// and starts a new one, so at most one write intent is in flight per
// debounce window and the last snapshot within a window wins.
//
// A failed write is logged, never surfaced to the caller; the hash
// guard is reset so the next mutation schedules the write again.
type AutoSaver struct {
	provider Provider
	delay    time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	pending  *pendingWrite
	lastHash uint64

	// writeMu serializes the actual disk writes so Flush can wait for
	// an in-flight write instead of racing it.
	writeMu sync.Mutex
}

type pendingWrite struct {
	snap Snapshot
	hash uint64
}

func NewAutoSaver(provider Provider) *AutoSaver {
	return &AutoSaver{
		provider: provider,
		delay:    constants.SaveDebounce,
	}
}

// NewAutoSaverWithDelay is intended for tests that need a short window.
func NewAutoSaverWithDelay(provider Provider, delay time.Duration) *AutoSaver {
	return &AutoSaver{provider: provider, delay: delay}
}

// ScheduleSave records the snapshot as the pending write and restarts
// the debounce timer. It never blocks on I/O. Snapshots identical to
// the last successfully written one are skipped.
func (s *AutoSaver) ScheduleSave(snap Snapshot) {
	hash, err := hashstructure.Hash(snap, hashstructure.FormatV2, nil)
	if err != nil {
		// Hashing is an optimization only; treat the snapshot as changed.
		logger.Debug("Failed to hash snapshot", "error", err)
		hash = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if hash != 0 && hash == s.lastHash && s.pending == nil {
		return
	}

	s.pending = &pendingWrite{snap: snap, hash: hash}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Flush forces any pending debounced write to complete before
// returning. Used for deterministic shutdown-time persistence.
func (s *AutoSaver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	pw := s.pending
	s.pending = nil
	s.mu.Unlock()

	if pw != nil {
		s.write(*pw)
		return
	}

	// No pending snapshot: wait out any write the timer already started.
	s.writeMu.Lock()
	s.writeMu.Unlock() //nolint:staticcheck // empty critical section is the wait
}

func (s *AutoSaver) fire() {
	s.mu.Lock()
	pw := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if pw == nil {
		// Flush won the race and already wrote this snapshot.
		return
	}
	s.write(*pw)
}

func (s *AutoSaver) write(pw pendingWrite) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.provider.Save(pw.snap); err != nil {
		logger.Error("Failed to persist snapshot", "path", s.provider.Path(), "error", err)
		s.mu.Lock()
		// Drop the hash guard so the next mutation retries the write.
		s.lastHash = 0
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.lastHash = pw.hash
	s.mu.Unlock()
}
