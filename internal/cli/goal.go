package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/timeutil"
)

type GoalAddCmd struct {
	Title string `arg:"" help:"Goal title."`
	Notes string `short:"n" help:"Free-form notes."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	goal, err := ctx.Store.AddGoal(c.Title, c.Notes)
	if err != nil {
		return err
	}

	fmt.Printf("Added goal %s: %s\n", shortID(goal.ID), goal.Title)
	return nil
}

type GoalUpdateCmd struct {
	ID       string `arg:"" help:"Goal id."`
	Progress int    `arg:"" help:"Progress percentage, clamped to 0-100."`
	Notes    string `short:"n" help:"Replace the goal's notes."`
	Record   bool   `short:"r" help:"Also record the new progress in this week's series."`
}

func (c *GoalUpdateCmd) Run(ctx *Context) error {
	goal, err := ctx.Store.UpdateGoal(c.ID, c.Progress, c.Notes)
	if err != nil {
		return err
	}

	if c.Record {
		label, err := timeutil.WeekLabel(ctx.Today)
		if err != nil {
			return err
		}
		if goal, err = ctx.Store.RecordGoalWeek(goal.ID, label, goal.Progress); err != nil {
			return err
		}
	}

	fmt.Printf("%s: %d%%\n", goal.Title, goal.Progress)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	goals := ctx.Store.Goals()
	if len(goals) == 0 {
		fmt.Println("No goals.")
		return nil
	}

	for _, goal := range goals {
		fmt.Printf("%s %3d%%  %s\n", shortID(goal.ID), goal.Progress, goal.Title)
		for _, point := range goal.WeeklyProgress {
			fmt.Printf("    %s %s: %d%%\n", labelStyle.Render("wk"), point.WeekLabel, point.Value)
		}
	}
	return nil
}
