package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/analytics"
	"github.com/julianstephens/daybook/internal/models"
)

type TrackCmd struct {
	Date string `short:"d" help:"Day to track (YYYY-MM-DD), defaults to today."`
}

func (c *TrackCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today
	}

	// Pre-fill from an existing tracker so re-running edits the day.
	tracker, _ := ctx.Store.Tracker(date)
	tracker.Date = date

	var sleep, screen, social, water, study, workoutMin string
	if tracker.ID != "" {
		sleep = formatFloat(tracker.SleepHours)
		screen = formatFloat(tracker.ScreenTimeHours)
		social = strconv.Itoa(tracker.SocialMediaMin)
		water = formatFloat(tracker.WaterLiters)
		study = formatFloat(tracker.StudyHours)
		workoutMin = strconv.Itoa(tracker.WorkoutDurationMin)
	}

	ratings := huh.NewOptions(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Meditation").Value(&tracker.Meditation),
			huh.NewConfirm().Title("No junk food").Value(&tracker.NoJunkFood),
			huh.NewConfirm().Title("No music").Value(&tracker.NoMusic),
			huh.NewConfirm().Title("Stayed under screen-time limit").Value(&tracker.NoScreenTimeLimitBreach),
			huh.NewConfirm().Title("Workout").Value(&tracker.Workout),
		),
		huh.NewGroup(
			huh.NewSelect[int]().Title("Energy").Options(ratings...).Value(&tracker.Energy),
			huh.NewSelect[int]().Title("Focus").Options(ratings...).Value(&tracker.Focus),
			huh.NewSelect[int]().Title("Mood").Options(ratings...).Value(&tracker.Mood),
			huh.NewSelect[int]().Title("Stress management").Options(ratings...).Value(&tracker.Stress),
		),
		huh.NewGroup(
			huh.NewInput().Title("Sleep (hours)").Value(&sleep),
			huh.NewInput().Title("Screen time (hours)").Value(&screen),
			huh.NewInput().Title("Social media (minutes)").Value(&social),
			huh.NewInput().Title("Water (liters)").Value(&water),
			huh.NewInput().Title("Study (hours)").Value(&study),
		),
		huh.NewGroup(
			huh.NewInput().Title("Workout type").Value(&tracker.WorkoutType),
			huh.NewInput().Title("Workout duration (minutes)").Value(&workoutMin),
			huh.NewText().Title("Reflection").Value(&tracker.Reflection),
			huh.NewText().Title("Gratitude").Value(&tracker.Gratitude),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	tracker.SleepHours = parseFloat(sleep)
	tracker.ScreenTimeHours = parseFloat(screen)
	tracker.SocialMediaMin = parseInt(social)
	tracker.WaterLiters = parseFloat(water)
	tracker.StudyHours = parseFloat(study)
	tracker.WorkoutDurationMin = parseInt(workoutMin)

	tracker, err := ctx.Store.SaveDailyTracker(tracker)
	if err != nil {
		return err
	}

	fmt.Printf("Saved tracker for %s, discipline score %s\n",
		tracker.Date, streakStyle.Render(fmt.Sprintf("%d/10", analytics.DisciplineScore(tracker))))
	return nil
}

// TrackShowCmd prints a saved tracker and its score without the form.
type TrackShowCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *TrackShowCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today
	}

	tracker, ok := ctx.Store.Tracker(date)
	if !ok {
		fmt.Printf("No tracker for %s.\n", date)
		return nil
	}

	printTracker(tracker)
	return nil
}

func printTracker(t models.DailyTracker) {
	fmt.Println(titleStyle.Render(t.Date))
	fmt.Printf("%s meditation  %s junk food  %s music  %s screen limit  %s workout\n",
		checkbox(t.Meditation), checkbox(t.NoJunkFood), checkbox(t.NoMusic),
		checkbox(t.NoScreenTimeLimitBreach), checkbox(t.Workout))
	fmt.Printf("energy %d  focus %d  mood %d  stress mgmt %d\n", t.Energy, t.Focus, t.Mood, t.Stress)
	fmt.Printf("sleep %.1fh  screen %.1fh  social %dm  water %.1fl  study %.1fh\n",
		t.SleepHours, t.ScreenTimeHours, t.SocialMediaMin, t.WaterLiters, t.StudyHours)
	if t.Reflection != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("reflection:"), t.Reflection)
	}
	fmt.Printf("discipline score: %s\n", streakStyle.Render(fmt.Sprintf("%d/10", analytics.DisciplineScore(t))))
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
