package models

import (
	"time"

	"github.com/julianstephens/daybook/internal/constants"
)

// Task is a single dated to-do item. Completed is not independent
// state: it must always equal Progress == 100.
type Task struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	TimeEstimateMin int       `json:"time_estimate_min"`
	Progress        int       `json:"progress"`
	Date            string    `json:"date"` // YYYY-MM-DD format
	Completed       bool      `json:"completed"`
	CarriedForward  bool      `json:"carried_forward"`
	ForwardedFrom   string    `json:"forwarded_from,omitempty"` // source task ID when carried forward
	CreatedAt       time.Time `json:"created_at"`
}

// SetProgress clamps the value to [0, 100] and keeps Completed in sync.
func (t *Task) SetProgress(progress int) {
	t.Progress = ClampInt(progress, constants.ProgressMin, constants.ProgressMax)
	t.Completed = t.Progress == constants.ProgressMax
}

// Normalize repairs out-of-range fields on a loaded or constructed
// task without rejecting it.
func (t *Task) Normalize() {
	if t.TimeEstimateMin < 1 {
		t.TimeEstimateMin = 1
	}
	t.SetProgress(t.Progress)
}
