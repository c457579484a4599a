package cli

import (
	"fmt"
)

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Icon string `short:"i" help:"Icon or category label."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.AddHabit(c.Name, c.Icon)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name or id."`
	Date string `short:"d" help:"Day to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Today
	}

	habit, err = ctx.Store.ToggleHabitCompletion(habit.ID, day)
	if err != nil {
		return err
	}

	state := "unmarked"
	if habit.CompletedOn(day) {
		state = doneStyle.Render("completed")
	}
	fmt.Printf("%s %s for %s (streak: %s)\n",
		habit.Name, state, day, streakStyle.Render(fmt.Sprintf("%d", habit.Streak)))
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits.")
		return nil
	}

	for _, habit := range habits {
		icon := ""
		if habit.Icon != "" {
			icon = habit.Icon + " "
		}
		fmt.Printf("%s %s%s  %s\n",
			checkbox(habit.CompletedOn(ctx.Today)), icon, habit.Name,
			streakStyle.Render(fmt.Sprintf("%d day streak", habit.Streak)))
	}
	return nil
}
