// Package rollover migrates incomplete tasks forward across day
// boundaries. Originals are retained with their historical date and
// progress (audit-trail policy) so analytics keep the full history;
// the forwarded copy records its source, which also makes repeated
// runs idempotent.
package rollover

import (
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/store"
)

type Scheduler struct {
	store *store.Store
}

func New(s *store.Store) *Scheduler {
	return &Scheduler{store: s}
}

// Run carries every incomplete past-dated task forward to today and
// returns the newly created tasks. Tasks that already have a forwarded
// copy are skipped, so running twice creates nothing new.
func (r *Scheduler) Run(today string) []models.Task {
	forwarded := []models.Task{}

	for _, task := range r.store.Tasks() {
		if !r.eligible(task, today) {
			continue
		}

		copy, created, err := r.store.ForwardTask(task.ID, today)
		if err != nil {
			logger.Warn("Failed to carry task forward", "task", task.ID, "error", err)
			continue
		}
		if created {
			logger.Debug("Carried task forward", "task", task.ID, "to", today)
			forwarded = append(forwarded, copy)
		}
	}

	return forwarded
}

func (r *Scheduler) eligible(task models.Task, today string) bool {
	if task.Date >= today {
		return false
	}
	if task.Completed {
		return false
	}
	// A source that was itself forwarded earlier is handled by the
	// store's per-source idempotency check inside ForwardTask.
	return true
}
