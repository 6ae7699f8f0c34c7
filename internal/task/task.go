package task

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyTitle is returned when a task title is empty after trimming.
var ErrEmptyTitle = errors.New("task title is empty")

// ErrNotFound is returned when no task matches the requested ID.
var ErrNotFound = errors.New("task not found")

// Task is the sole persisted entity. DueDateTime is nil when the task
// has no due date; every read site must handle that case.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	DueDateTime *time.Time `json:"dueDateTime,omitempty"`
	Completed   bool       `json:"completed"`
	Reminder    bool       `json:"reminder"`
}

// NewID builds a task ID from the given instant, as a millisecond
// epoch decimal string. IDs are immutable once assigned; callers that
// generate several in the same millisecond must bump the instant.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Validate checks the invariants enforced at the store boundary.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Sort orders tasks for persistence: incomplete tasks precede completed
// ones, and relative order within each partition is preserved.
func Sort(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].Completed && tasks[j].Completed
	})
}

// Sorted returns a sorted copy, leaving the input untouched.
func Sorted(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	Sort(out)
	return out
}

// Find returns a pointer into tasks for the matching ID, or nil.
func Find(tasks []Task, id string) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
