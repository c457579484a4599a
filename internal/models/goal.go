package models

import (
	"time"

	"github.com/julianstephens/daybook/internal/constants"
)

// WeeklyPoint is one sample in a goal's weekly progress series.
type WeeklyPoint struct {
	WeekLabel string `json:"week_label"`
	Value     int    `json:"value"`
}

// Goal is a longer-horizon objective with 0-100 progress and an
// ordered weekly progress series for charting.
type Goal struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Progress       int           `json:"progress"`
	Notes          string        `json:"notes,omitempty"`
	WeeklyProgress []WeeklyPoint `json:"weekly_progress,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// SetProgress clamps the value to [0, 100].
func (g *Goal) SetProgress(progress int) {
	g.Progress = ClampInt(progress, constants.ProgressMin, constants.ProgressMax)
}
