package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/projection"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	summary := projection.BuildTodaySummary(ctx.Store, ctx.Today)

	fmt.Println(titleStyle.Render("Today: " + summary.Date))
	fmt.Printf("Tasks:  %d/%d done, avg progress %.0f%%\n",
		summary.TasksDone, summary.TasksTotal, summary.AvgTaskProgress)
	fmt.Printf("Habits: %d/%d completed\n", summary.HabitsDone, summary.HabitsTotal)
	if summary.DisciplineScore != nil {
		fmt.Printf("Discipline score: %s\n", streakStyle.Render(fmt.Sprintf("%d/10", *summary.DisciplineScore)))
	} else {
		fmt.Println(labelStyle.Render("No tracker for today yet. Run 'daybook track'."))
	}
	return nil
}

type WeekCmd struct {
	Date string `short:"d" help:"Any day in the week to summarize, defaults to today."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = ctx.Today
	}

	summary, err := projection.BuildWeekSummary(ctx.Store, day)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Week %s to %s", summary.Start, summary.End)))
	fmt.Printf("Tasks completed:       %d/%d\n", summary.TasksCompleted, summary.TasksTotal)
	fmt.Printf("Habit completion rate: %.0f%%\n", summary.HabitCompletionRate)
	fmt.Printf("Peak streak:           %s\n", streakStyle.Render(fmt.Sprintf("%d days", summary.PeakStreak)))
	return nil
}

type InsightsCmd struct {
	Days int `default:"30" help:"Window length in days, ending today."`
}

func (c *InsightsCmd) Run(ctx *Context) error {
	summary, err := projection.BuildInsights(ctx.Store, ctx.Today, c.Days)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Insights %s to %s", summary.Start, summary.End)))
	fmt.Printf("Consistency: %.0f%%  (days with any habit completed)\n", summary.ConsistencyPct)
	fmt.Printf("Adherence:   %.0f%%  (mean habit completion rate)\n", summary.AdherencePct)
	fmt.Printf("Accuracy:    %.0f%%  (mean task progress)\n", summary.AccuracyPct)
	if len(summary.ScoreSeries) > 0 {
		fmt.Println(labelStyle.Render("Discipline scores:"))
		for _, point := range summary.ScoreSeries {
			bar := ""
			for i := 0; i < point.Score; i++ {
				bar += "█"
			}
			fmt.Printf("  %s %2d %s\n", point.Date, point.Score, streakStyle.Render(bar))
		}
	}
	return nil
}

type RolloverCmd struct{}

func (c *RolloverCmd) Run(ctx *Context) error {
	forwarded := ctx.Rollover.Run(ctx.Today)
	if len(forwarded) == 0 {
		fmt.Println("Nothing to carry forward.")
		return nil
	}

	for _, task := range forwarded {
		fmt.Printf("Carried forward: %s → %s\n", task.Title, task.Date)
	}
	return nil
}
