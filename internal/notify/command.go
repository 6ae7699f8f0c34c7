package notify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// CommandScheduler invokes an external notifier command, once per
// request. The command receives a subcommand and positional arguments:
//
//	<command> schedule <request-id> <task-id> <rfc3339-trigger> <title> <body>
//	<command> cancel <task-id>
//
// A thin wrapper over at(1), systemd-run, or notify-send fits this
// contract; the application never schedules anything in-process.
type CommandScheduler struct {
	Command string
	WorkDir string
}

// NewCommandScheduler returns a scheduler driving the given command.
func NewCommandScheduler(command string) *CommandScheduler {
	return &CommandScheduler{Command: command}
}

// Schedule asks the host to fire the notification at req.TriggerAt.
func (s *CommandScheduler) Schedule(ctx context.Context, req Request) error {
	if s.Command == "" {
		return nil
	}
	args := []string{
		"schedule",
		req.ID,
		req.TaskID,
		req.TriggerAt.Format(time.RFC3339),
		req.Title,
		req.Body,
	}
	return s.run(ctx, args)
}

// Cancel revokes any pending notification for the task.
func (s *CommandScheduler) Cancel(ctx context.Context, taskID string) error {
	if s.Command == "" {
		return nil
	}
	return s.run(ctx, []string{"cancel", taskID})
}

func (s *CommandScheduler) run(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, s.Command, args...)
	if s.WorkDir != "" {
		cmd.Dir = s.WorkDir
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notifier command failed: %w", err)
	}
	return nil
}
