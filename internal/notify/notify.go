// Package notify requests reminder notifications from the host
// platform. It decides nothing about delivery: scheduling and firing
// belong to whatever notifier command the user configures.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Request asks the host notifier to fire one notification at TriggerAt.
type Request struct {
	ID        string
	TaskID    string
	Title     string
	Body      string
	TriggerAt time.Time
}

// NewRequest builds a reminder request for a task, assigning a fresh
// request ID.
func NewRequest(taskID, taskTitle string, triggerAt time.Time) Request {
	return Request{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Title:     "Task Reminder",
		Body:      "Don't forget: " + taskTitle,
		TriggerAt: triggerAt,
	}
}

// Scheduler delegates reminder scheduling to the host. Schedule is
// fire-and-forget from the store's point of view: failures are logged
// by the caller, never rolled back into task state. Cancel revokes any
// pending notification for a task; it is issued when a reminder is
// switched off or its task is deleted.
type Scheduler interface {
	Schedule(ctx context.Context, req Request) error
	Cancel(ctx context.Context, taskID string) error
}

// Noop is a Scheduler that does nothing. It backs runs with no
// notifier command configured.
type Noop struct{}

func (Noop) Schedule(ctx context.Context, req Request) error { return nil }
func (Noop) Cancel(ctx context.Context, taskID string) error { return nil }
