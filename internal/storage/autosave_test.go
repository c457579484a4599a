package storage

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/daybook/internal/models"
)

// memProvider records saves in memory and can be told to fail.
type memProvider struct {
	mu    sync.Mutex
	saves []Snapshot
	fail  bool
}

func (p *memProvider) Init() error { return nil }

func (p *memProvider) Load() (Snapshot, error) { return NewSnapshot(), nil }

func (p *memProvider) Save(snap Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return fmt.Errorf("disk full")
	}
	p.saves = append(p.saves, snap)
	return nil
}

func (p *memProvider) Close() error { return nil }

func (p *memProvider) Path() string { return "mem" }

func (p *memProvider) setFail(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = fail
}

func (p *memProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.saves)
}

func (p *memProvider) last() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves[len(p.saves)-1]
}

func snapWithTask(title string) Snapshot {
	snap := NewSnapshot()
	snap.Tasks = []models.Task{{ID: "t1", Title: title, Date: "2026-03-10"}}
	return snap
}

func TestAutoSaverCoalescesRapidSaves(t *testing.T) {
	provider := &memProvider{}
	saver := NewAutoSaverWithDelay(provider, 20*time.Millisecond)

	for i := 0; i < 10; i++ {
		saver.ScheduleSave(snapWithTask(fmt.Sprintf("task %d", i)))
	}

	time.Sleep(150 * time.Millisecond)

	if got := provider.count(); got != 1 {
		t.Fatalf("writes = %d, want 1 coalesced write", got)
	}
	if got := provider.last().Tasks[0].Title; got != "task 9" {
		t.Errorf("wrote %q, want the last snapshot", got)
	}
}

func TestAutoSaverFlushWritesPendingImmediately(t *testing.T) {
	provider := &memProvider{}
	saver := NewAutoSaverWithDelay(provider, time.Hour)

	saver.ScheduleSave(snapWithTask("pending"))
	saver.Flush()

	if got := provider.count(); got != 1 {
		t.Fatalf("writes = %d, want 1 after flush", got)
	}

	// Nothing pending: another flush is a no-op.
	saver.Flush()
	if got := provider.count(); got != 1 {
		t.Errorf("writes = %d after second flush, want 1", got)
	}
}

func TestAutoSaverSkipsUnchangedSnapshot(t *testing.T) {
	provider := &memProvider{}
	saver := NewAutoSaverWithDelay(provider, time.Millisecond)

	snap := snapWithTask("same")
	saver.ScheduleSave(snap)
	saver.Flush()

	saver.ScheduleSave(snap)
	saver.Flush()

	if got := provider.count(); got != 1 {
		t.Errorf("writes = %d, want 1 (identical snapshot skipped)", got)
	}
}

func TestAutoSaverRetriesAfterFailedWrite(t *testing.T) {
	provider := &memProvider{}
	saver := NewAutoSaverWithDelay(provider, time.Millisecond)

	provider.setFail(true)
	snap := snapWithTask("retry me")
	saver.ScheduleSave(snap)
	saver.Flush()

	if got := provider.count(); got != 0 {
		t.Fatalf("writes = %d during failure, want 0", got)
	}

	// The failed write dropped the hash guard, so re-scheduling the same
	// snapshot writes it.
	provider.setFail(false)
	saver.ScheduleSave(snap)
	saver.Flush()

	if got := provider.count(); got != 1 {
		t.Errorf("writes = %d after recovery, want 1", got)
	}
}

func TestAutoSaverTimerFires(t *testing.T) {
	provider := &memProvider{}
	saver := NewAutoSaverWithDelay(provider, 10*time.Millisecond)

	saver.ScheduleSave(snapWithTask("timed"))

	deadline := time.Now().Add(time.Second)
	for provider.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := provider.count(); got != 1 {
		t.Errorf("writes = %d, want 1 from timer", got)
	}
}
