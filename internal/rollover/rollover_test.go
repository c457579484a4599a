package rollover

import (
	"testing"

	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/store"
)

func newTestStore() *store.Store {
	return store.New(storage.NewSnapshot(), nil)
}

func TestRunForwardsIncompletePastTasks(t *testing.T) {
	s := newTestStore()
	today := "2026-03-12"

	stale, _ := s.CreateTask("Write report", 60, "2026-03-10")
	s.UpdateTaskProgress(stale.ID, 40)
	done, _ := s.CreateTask("Pay rent", 5, "2026-03-10")
	s.UpdateTaskProgress(done.ID, 100)
	current, _ := s.CreateTask("Standup", 15, today)

	forwarded := New(s).Run(today)

	if len(forwarded) != 1 {
		t.Fatalf("forwarded %d tasks, want 1", len(forwarded))
	}
	copy := forwarded[0]
	if copy.Title != "Write report" {
		t.Errorf("forwarded %q, want the incomplete past task", copy.Title)
	}
	if copy.Date != today {
		t.Errorf("copy date = %s, want %s", copy.Date, today)
	}
	if copy.Progress != 0 || copy.Completed {
		t.Errorf("copy progress = %d, want fresh 0", copy.Progress)
	}
	if !copy.CarriedForward || copy.ForwardedFrom != stale.ID {
		t.Errorf("copy lineage = %v/%q, want carried from %s", copy.CarriedForward, copy.ForwardedFrom, stale.ID)
	}

	// The original stays behind with its history intact.
	original, err := s.Task(stale.ID)
	if err != nil {
		t.Fatal(err)
	}
	if original.Date != "2026-03-10" || original.Progress != 40 {
		t.Errorf("original mutated: date=%s progress=%d", original.Date, original.Progress)
	}

	if _, err := s.Task(current.ID); err != nil {
		t.Errorf("today's task should be untouched: %v", err)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	s := newTestStore()
	today := "2026-03-12"
	s.CreateTask("Write report", 60, "2026-03-10")

	first := New(s).Run(today)
	second := New(s).Run(today)

	if len(first) != 1 {
		t.Fatalf("first run forwarded %d, want 1", len(first))
	}
	if len(second) != 0 {
		t.Errorf("second run forwarded %d, want 0", len(second))
	}
	if got := len(s.Tasks()); got != 2 {
		t.Errorf("task count = %d, want 2 (original plus one copy)", got)
	}
}

func TestRunSkipsForwardedCopyWithExistingSuccessor(t *testing.T) {
	// A copy that itself went stale is forwarded again; its source is
	// not, because the source already has a successor.
	s := newTestStore()

	src, _ := s.CreateTask("Write report", 60, "2026-03-10")
	New(s).Run("2026-03-11")

	forwarded := New(s).Run("2026-03-12")

	if len(forwarded) != 1 {
		t.Fatalf("forwarded %d, want 1 (only the stale copy)", len(forwarded))
	}
	if forwarded[0].ForwardedFrom == src.ID {
		t.Error("source with an existing successor was forwarded again")
	}
	if forwarded[0].Date != "2026-03-12" {
		t.Errorf("copy date = %s, want 2026-03-12", forwarded[0].Date)
	}
}

func TestRunEmptyStore(t *testing.T) {
	s := newTestStore()
	if got := New(s).Run("2026-03-12"); len(got) != 0 {
		t.Errorf("forwarded %d tasks from empty store, want 0", len(got))
	}
}
