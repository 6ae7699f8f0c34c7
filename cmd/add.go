package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/SurajChaurasia84/TaskManager/internal/config"
	"github.com/SurajChaurasia84/TaskManager/internal/store"
)

// dueLayouts are the accepted -due formats, tried in order.
var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDue(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dueLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unrecognized due time %q (expected RFC 3339, 2006-01-02 15:04, or 2006-01-02)", value)
}

// addCommand adds one task from flags.
func addCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskman add", flag.ContinueOnError)
	title := fs.String("title", "", "Task title (required)")
	desc := fs.String("desc", "", "Task description")
	due := fs.String("due", "", "Due date/time")
	remind := fs.Bool("remind", false, "Set a reminder")
	image := fs.String("image", "", "Image file path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	// A bare positional argument is treated as the title.
	if *title == "" && fs.NArg() > 0 {
		*title = fs.Arg(0)
	}

	dueAt, err := parseDue(*due)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	t, err := a.store.Add(ctx, store.Draft{
		Title:       *title,
		Description: *desc,
		Image:       *image,
		DueDateTime: dueAt,
		Reminder:    *remind,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s: %s\n", t.ID, t.Title)
	return nil
}
