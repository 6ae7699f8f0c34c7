package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/SurajChaurasia84/TaskManager/internal/config"
	"github.com/SurajChaurasia84/TaskManager/internal/task"
)

// takeID splits a leading task ID off the argument list.
func takeID(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("task ID is required")
	}
	return args[0], args[1:], nil
}

// doneCommand toggles the completed flag.
func doneCommand(ctx context.Context, cfg *config.Config, args []string) error {
	id, _, err := takeID(args)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	t := task.Find(a.store.Tasks(), id)
	if t == nil {
		return fmt.Errorf("task %q not found", id)
	}
	a.store.ToggleComplete(ctx, id)

	if t.Completed {
		fmt.Printf("Reopened %s: %s\n", id, t.Title)
	} else {
		fmt.Printf("Completed %s: %s\n", id, t.Title)
	}
	return nil
}

// remindCommand toggles the reminder flag, scheduling or cancelling
// the host notification as a side effect.
func remindCommand(ctx context.Context, cfg *config.Config, args []string) error {
	id, _, err := takeID(args)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	t := task.Find(a.store.Tasks(), id)
	if t == nil {
		return fmt.Errorf("task %q not found", id)
	}
	a.store.ToggleReminder(ctx, id)

	if t.Reminder {
		fmt.Printf("Reminder off for %s: %s\n", id, t.Title)
	} else {
		fmt.Printf("Reminder on for %s: %s\n", id, t.Title)
	}
	return nil
}

// editCommand replaces the title and/or description.
func editCommand(ctx context.Context, cfg *config.Config, args []string) error {
	id, rest, err := takeID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("taskman edit", flag.ContinueOnError)
	title := fs.String("title", "", "New title")
	desc := fs.String("desc", "", "New description")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	t := task.Find(a.store.Tasks(), id)
	if t == nil {
		return fmt.Errorf("task %q not found", id)
	}

	newTitle := t.Title
	if *title != "" {
		newTitle = *title
	}
	newDesc := t.Description
	if *desc != "" || flagProvided(fs, "desc") {
		newDesc = *desc
	}

	if err := a.store.Edit(ctx, id, newTitle, newDesc); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", id)
	return nil
}

// rmCommand deletes a task.
func rmCommand(ctx context.Context, cfg *config.Config, args []string) error {
	id, _, err := takeID(args)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	t := task.Find(a.store.Tasks(), id)
	if t == nil {
		return fmt.Errorf("task %q not found", id)
	}
	a.store.Delete(ctx, id)

	fmt.Printf("Deleted %s: %s\n", id, t.Title)
	return nil
}

func flagProvided(fs *flag.FlagSet, name string) bool {
	provided := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			provided = true
		}
	})
	return provided
}
