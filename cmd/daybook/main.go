package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/rollover"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/storage/sqlite"
	"github.com/julianstephens/daybook/internal/store"
	"github.com/julianstephens/daybook/internal/timeutil"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Store path. A .json extension selects the JSON blob store, anything else SQLite." default:"${data_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init cli.InitCmd `cmd:"" help:"Initialize daybook storage."`
	Tui  cli.TuiCmd  `cmd:"" default:"1" help:"Launch the interactive dashboard."`

	Task struct {
		Add      cli.TaskAddCmd      `cmd:"" help:"Add a new task."`
		Progress cli.TaskProgressCmd `cmd:"" help:"Set a task's progress."`
		Done     cli.TaskDoneCmd     `cmd:"" help:"Mark a task complete."`
		Delete   cli.TaskDeleteCmd   `cmd:"" help:"Delete a task."`
		List     cli.TaskListCmd     `cmd:"" help:"List tasks."`
	} `cmd:"" help:"Manage tasks."`

	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with streaks."`
	} `cmd:"" help:"Manage habits and completions."`

	Journal struct {
		Add    cli.JournalAddCmd    `cmd:"" help:"Add a journal entry."`
		List   cli.JournalListCmd   `cmd:"" help:"List journal entries."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
	} `cmd:"" help:"Manage the journal."`

	Log cli.LogAddCmd `cmd:"" help:"Append a quick daily log line."`

	Goal struct {
		Add    cli.GoalAddCmd    `cmd:"" help:"Add a goal."`
		Update cli.GoalUpdateCmd `cmd:"" help:"Update a goal's progress."`
		List   cli.GoalListCmd   `cmd:"" help:"List goals."`
	} `cmd:"" help:"Manage goals."`

	Track struct {
		Fill cli.TrackCmd     `cmd:"" default:"1" help:"Fill in the daily tracker."`
		Show cli.TrackShowCmd `cmd:"" help:"Show a saved tracker."`
	} `cmd:"" help:"Daily discipline tracker."`

	Today    cli.TodayCmd    `cmd:"" help:"Show today's summary."`
	Week     cli.WeekCmd     `cmd:"" help:"Show the weekly summary."`
	Insights cli.InsightsCmd `cmd:"" help:"Show consistency/adherence/accuracy insights."`
	Rollover cli.RolloverCmd `cmd:"" help:"Carry incomplete past tasks forward to today."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first habit, task and journal tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":   constants.Version,
			"data_path": constants.DefaultStorePath,
		},
	)

	path, err := expandPath(CLI.Data)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: filepath.Dir(path)}); err != nil {
		// Logging is best-effort; a read-only data dir should not stop the app.
		logger.Logger = nil
	}

	provider := newProvider(path)

	if kctx.Command() == "init" {
		errors.Fatal(cli.RunInit(provider))
		return
	}

	snapshot, err := provider.Load()
	if err != nil {
		errors.Fatal(err)
	}

	saver := storage.NewAutoSaver(provider)
	st := store.New(snapshot, saver)

	ctx := &cli.Context{
		Store:    st,
		Rollover: rollover.New(st),
		Today:    timeutil.Today(),
	}

	runErr := kctx.Run(ctx)

	// Force any pending debounced write before exit.
	saver.Flush()
	if err := provider.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}

	errors.Fatal(runErr)
}

func newProvider(path string) storage.Provider {
	if strings.HasSuffix(path, ".json") {
		return storage.NewJSONStore(path)
	}
	return sqlite.NewStore(path)
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
