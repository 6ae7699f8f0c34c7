package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/SurajChaurasia84/TaskManager/internal/config"
	"github.com/SurajChaurasia84/TaskManager/internal/task"
)

// lsCommand lists tasks: day-grouped by default, or flat with -all,
// a single date with -on, or future-dated with -upcoming.
func lsCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskman ls", flag.ContinueOnError)
	all := fs.Bool("all", false, "Flat list instead of day groups")
	on := fs.String("on", "", "Only tasks due on this date (2006-01-02)")
	upcoming := fs.Bool("upcoming", false, "Only tasks due after now")

	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks := a.store.Tasks()
	now := time.Now()

	switch {
	case *on != "":
		day, err := time.ParseInLocation("2006-01-02", *on, time.Local)
		if err != nil {
			return fmt.Errorf("parsing -on date: %w", err)
		}
		printFlat(task.DueOn(tasks, day))
	case *upcoming:
		printFlat(task.SortByDue(task.Upcoming(tasks, now), false))
	case *all:
		printFlat(tasks)
	default:
		printGrouped(task.GroupByDay(tasks, now))
	}
	return nil
}

// searchCommand lists tasks matching a case-insensitive substring
// query over the title and description.
func searchCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskman search", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search needs a query")
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	printFlat(task.Search(a.store.Tasks(), query))
	return nil
}

// remindersCommand lists upcoming reminders.
func remindersCommand(ctx context.Context, cfg *config.Config) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	upcoming := task.UpcomingReminders(a.store.Tasks(), time.Now())
	if len(upcoming) == 0 {
		fmt.Println("No upcoming reminders.")
		return nil
	}
	for _, t := range upcoming {
		fmt.Printf("%s  %s  %s\n", t.ID, t.DueDateTime.Local().Format("Jan 2, 2006 15:04"), t.Title)
	}
	return nil
}

func printFlat(tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}
	for _, t := range tasks {
		fmt.Println(formatTask(t))
	}
}

func printGrouped(groups []task.DayGroup) {
	if len(groups) == 0 {
		fmt.Println("No tasks yet.")
		return
	}
	for _, g := range groups {
		fmt.Println(g.Label)
		for _, t := range g.Tasks {
			fmt.Println(formatTask(t))
		}
	}
}

func formatTask(t task.Task) string {
	check := " "
	if t.Completed {
		check = "x"
	}
	bell := " "
	if t.Reminder {
		bell = "!"
	}
	line := fmt.Sprintf("  [%s]%s %s  %s", check, bell, t.ID, t.Title)
	if t.DueDateTime != nil {
		line += "  " + t.DueDateTime.Local().Format("Jan 2 15:04")
	}
	return line
}
