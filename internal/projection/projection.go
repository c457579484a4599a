// Package projection composes read-only views from the domain store
// and the analytics engine for presentation collaborators. Views are
// computed on demand from the current snapshot and never persisted.
package projection

import (
	"github.com/julianstephens/daybook/internal/analytics"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/store"
	"github.com/julianstephens/daybook/internal/timeutil"
)

// HabitWithStreak pairs a habit with its authoritative recomputed
// streak as of the reference day.
type HabitWithStreak struct {
	models.Habit
	CurrentStreak  int  `json:"current_streak"`
	CompletedToday bool `json:"completed_today"`
}

// TodaySummary aggregates one day's task and habit state.
type TodaySummary struct {
	Date            string  `json:"date"`
	TasksDone       int     `json:"tasks_done"`
	TasksTotal      int     `json:"tasks_total"`
	AvgTaskProgress float64 `json:"avg_task_progress"`
	HabitsDone      int     `json:"habits_done"`
	HabitsTotal     int     `json:"habits_total"`
	DisciplineScore *int    `json:"discipline_score,omitempty"` // nil when no tracker exists
}

// ScorePoint is one day's discipline score for charting.
type ScorePoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// InsightsSummary carries the consistency/adherence/accuracy
// percentages and the discipline-score time series.
type InsightsSummary struct {
	Start          string       `json:"start"`
	End            string       `json:"end"`
	ConsistencyPct float64      `json:"consistency_pct"` // days with any habit completion
	AdherencePct   float64      `json:"adherence_pct"`   // mean habit completion rate
	AccuracyPct    float64      `json:"accuracy_pct"`    // mean progress of the window's tasks
	ScoreSeries    []ScorePoint `json:"score_series"`
}

// HabitsWithStreaks returns every habit with its streak recomputed for
// the given day.
func HabitsWithStreaks(s *store.Store, today string) []HabitWithStreak {
	habits := s.Habits()
	out := make([]HabitWithStreak, 0, len(habits))
	for _, habit := range habits {
		out = append(out, HabitWithStreak{
			Habit:          habit,
			CurrentStreak:  analytics.Streak(habit, today),
			CompletedToday: habit.CompletedOn(today),
		})
	}
	return out
}

// BuildTodaySummary aggregates the given day's tasks, habits and
// tracker into a single view.
func BuildTodaySummary(s *store.Store, today string) TodaySummary {
	summary := TodaySummary{Date: today}

	tasks := s.TasksForDay(today)
	summary.TasksTotal = len(tasks)
	progressSum := 0
	for _, task := range tasks {
		progressSum += task.Progress
		if task.Completed {
			summary.TasksDone++
		}
	}
	if summary.TasksTotal > 0 {
		summary.AvgTaskProgress = float64(progressSum) / float64(summary.TasksTotal)
	}

	habits := s.Habits()
	summary.HabitsTotal = len(habits)
	for _, habit := range habits {
		if habit.CompletedOn(today) {
			summary.HabitsDone++
		}
	}

	if tracker, ok := s.Tracker(today); ok {
		score := analytics.DisciplineScore(tracker)
		summary.DisciplineScore = &score
	}

	return summary
}

// BuildWeekSummary computes the weekly review view for the week
// containing the given day.
func BuildWeekSummary(s *store.Store, day string) (analytics.WeekSummary, error) {
	start, err := timeutil.StartOfWeek(day)
	if err != nil {
		return analytics.WeekSummary{}, err
	}
	end, err := timeutil.AddDays(start, 6)
	if err != nil {
		return analytics.WeekSummary{}, err
	}
	return analytics.WeeklySummary(s.Tasks(), s.Habits(), start, end), nil
}

// BuildInsights computes consistency, adherence and accuracy over the
// window ending at end, inclusive, spanning days calendar days.
func BuildInsights(s *store.Store, end string, days int) (InsightsSummary, error) {
	if days < 1 {
		days = 1
	}
	start, err := timeutil.AddDays(end, -(days - 1))
	if err != nil {
		return InsightsSummary{}, err
	}

	summary := InsightsSummary{Start: start, End: end, ScoreSeries: []ScorePoint{}}

	habits := s.Habits()
	daysWithCompletion := 0
	day := start
	for i := 0; i < days; i++ {
		for _, habit := range habits {
			if habit.CompletedOn(day) {
				daysWithCompletion++
				break
			}
		}
		next, err := timeutil.AddDays(day, 1)
		if err != nil {
			return InsightsSummary{}, err
		}
		day = next
	}
	summary.ConsistencyPct = float64(daysWithCompletion) / float64(days) * 100

	var rateSum float64
	for _, habit := range habits {
		rateSum += analytics.CompletionRate(habit, start, end)
	}
	if len(habits) > 0 {
		summary.AdherencePct = rateSum / float64(len(habits))
	}

	progressSum, taskCount := 0, 0
	for _, task := range s.Tasks() {
		if task.Date < start || task.Date > end {
			continue
		}
		progressSum += task.Progress
		taskCount++
	}
	if taskCount > 0 {
		summary.AccuracyPct = float64(progressSum) / float64(taskCount)
	}

	for _, tracker := range s.Trackers() {
		if tracker.Date < start || tracker.Date > end {
			continue
		}
		summary.ScoreSeries = append(summary.ScoreSeries, ScorePoint{
			Date:  tracker.Date,
			Score: analytics.DisciplineScore(tracker),
		})
	}

	return summary, nil
}
