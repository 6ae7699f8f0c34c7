// Package cmd implements the CLI command structure for taskman.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/SurajChaurasia84/TaskManager/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskman CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskman", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Default to the TUI when no subcommand is given.
	subcommand := "tui"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg)
	case "add":
		return addCommand(ctx, cfg, remaining)
	case "ls", "list":
		return lsCommand(ctx, cfg, remaining)
	case "search":
		return searchCommand(ctx, cfg, remaining)
	case "done":
		return doneCommand(ctx, cfg, remaining)
	case "remind":
		return remindCommand(ctx, cfg, remaining)
	case "edit":
		return editCommand(ctx, cfg, remaining)
	case "rm", "delete":
		return rmCommand(ctx, cfg, remaining)
	case "reminders":
		return remindersCommand(ctx, cfg)
	case "doctor":
		return doctorCommand(ctx, cfg)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func versionCommand() error {
	fmt.Printf("taskman %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: taskman [flags] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui              Interactive terminal UI (default)")
	fmt.Fprintln(w, "  add              Add a task")
	fmt.Fprintln(w, "  ls               List tasks (day-grouped by default)")
	fmt.Fprintln(w, "  search QUERY     Search title and description")
	fmt.Fprintln(w, "  done ID          Toggle a task's completed flag")
	fmt.Fprintln(w, "  remind ID        Toggle a task's reminder flag")
	fmt.Fprintln(w, "  edit ID          Edit a task's title and description")
	fmt.Fprintln(w, "  rm ID            Delete a task")
	fmt.Fprintln(w, "  reminders        List upcoming reminders")
	fmt.Fprintln(w, "  doctor           Check config, storage, and notifier")
	fmt.Fprintln(w, "  version          Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
