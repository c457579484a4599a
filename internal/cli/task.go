package cli

import (
	"fmt"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Estimate int    `short:"e" default:"30" help:"Time estimate in minutes."`
	Date     string `short:"d" help:"Task date (YYYY-MM-DD), defaults to today."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today
	}

	task, err := ctx.Store.CreateTask(c.Title, c.Estimate, date)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %s: %s (%dm, %s)\n", shortID(task.ID), task.Title, task.TimeEstimateMin, task.Date)
	return nil
}

type TaskProgressCmd struct {
	ID       string `arg:"" help:"Task id or unique prefix."`
	Progress int    `arg:"" help:"Progress percentage, clamped to 0-100."`
}

func (c *TaskProgressCmd) Run(ctx *Context) error {
	task, err := resolveTask(ctx, c.ID)
	if err != nil {
		return err
	}

	task, err = ctx.Store.UpdateTaskProgress(task.ID, c.Progress)
	if err != nil {
		return err
	}

	status := fmt.Sprintf("%d%%", task.Progress)
	if task.Completed {
		status = doneStyle.Render("done")
	}
	fmt.Printf("%s %s: %s\n", shortID(task.ID), task.Title, status)
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id or unique prefix."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	task, err := resolveTask(ctx, c.ID)
	if err != nil {
		return err
	}

	if _, err := ctx.Store.UpdateTaskProgress(task.ID, 100); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", doneStyle.Render("✓"), task.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id or unique prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	task, err := resolveTask(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s: %s\n", shortID(task.ID), task.Title)
	return nil
}

type TaskListCmd struct {
	Date string `short:"d" help:"Only show tasks for this date (YYYY-MM-DD)."`
	All  bool   `short:"a" help:"Show all tasks regardless of date."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks := ctx.Store.Tasks()
	if !c.All {
		date := c.Date
		if date == "" {
			date = ctx.Today
		}
		tasks = ctx.Store.TasksForDay(date)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	for _, task := range tasks {
		carried := ""
		if task.CarriedForward {
			carried = labelStyle.Render(" (carried forward)")
		}
		fmt.Printf("%s %s  %s  %3d%%  %dm  %s%s\n",
			checkbox(task.Completed), shortID(task.ID), task.Date, task.Progress, task.TimeEstimateMin, task.Title, carried)
	}
	return nil
}
