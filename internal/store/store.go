// Package store owns the canonical task collection and mediates all
// reads and writes to the key-value persistence layer.
package store

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SurajChaurasia84/TaskManager/internal/kv"
	"github.com/SurajChaurasia84/TaskManager/internal/notify"
	"github.com/SurajChaurasia84/TaskManager/internal/task"
)

// DefaultOpTimeout bounds a single persistence operation. A stalled
// storage call must not stall the UI indefinitely.
const DefaultOpTimeout = 5 * time.Second

// Store is the single writer over the persisted task collection. All
// mutations run under one mutex and each is a full read-modify-write
// of the serialized list.
type Store struct {
	mu        sync.Mutex
	kv        kv.Store
	scheduler notify.Scheduler
	logger    *log.Logger
	opTimeout time.Duration
	now       func() time.Time

	tasks []task.Task
}

// Option configures a Store.
type Option func(*Store)

// WithOpTimeout overrides the persistence operation timeout.
func WithOpTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.opTimeout = d
		}
	}
}

// WithClock overrides the time source. Tests use it to pin ID
// generation and due-date defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store over the given persistence and scheduler. A nil
// scheduler disables reminder delivery; a nil logger discards logs.
func New(kvStore kv.Store, scheduler notify.Scheduler, logger *log.Logger, opts ...Option) *Store {
	if scheduler == nil {
		scheduler = notify.Noop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		kv:        kvStore,
		scheduler: scheduler,
		logger:    logger,
		opTimeout: DefaultOpTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// bound derives a context that caps how long a persistence call may
// block.
func (s *Store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// Load reads the persisted collection. A missing key yields an empty
// collection; a malformed payload is logged and degrades to an empty
// collection, since there is no recovery path for corrupt local state.
func (s *Store) Load(ctx context.Context) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opCtx, cancel := s.bound(ctx)
	defer cancel()

	raw, ok, err := s.kv.Get(opCtx, kv.KeyTasks)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.tasks = nil
		return nil, nil
	}

	tasks, err := task.Decode([]byte(raw))
	if err != nil {
		s.logger.Error("discarding malformed task payload", "err", err)
		s.tasks = nil
		return nil, nil
	}

	task.Sort(tasks)
	s.tasks = tasks
	return snapshot(s.tasks), nil
}

// Tasks returns a snapshot copy of the in-memory collection. Views
// render projections of snapshots and never hold mutable aliases.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.tasks)
}

// Save applies the sort policy, replaces the in-memory state, and
// persists the full collection.
func (s *Store) Save(ctx context.Context, tasks []task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = snapshot(tasks)
	s.persist(ctx)
}

// Draft carries the caller-supplied fields of a new task.
type Draft struct {
	Title       string
	Description string
	Image       string
	DueDateTime *time.Time
	Reminder    bool
}

// Add assigns a fresh ID, defaults the due time to now when unset,
// prepends the task, and persists. A reminder draft with a due time
// also requests host scheduling.
func (s *Store) Add(ctx context.Context, draft Draft) (task.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return task.Task{}, task.ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := task.NewID(now)
	for task.Find(s.tasks, id) != nil {
		now = now.Add(time.Millisecond)
		id = task.NewID(now)
	}

	due := draft.DueDateTime
	if due == nil {
		d := now
		due = &d
	}

	t := task.Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Image:       draft.Image,
		DueDateTime: due,
		Completed:   false,
		Reminder:    draft.Reminder,
	}
	s.tasks = append([]task.Task{t}, s.tasks...)
	s.persist(ctx)

	if t.Reminder {
		s.schedule(ctx, t)
	}
	return t, nil
}

// ToggleComplete flips the completed flag. Unknown IDs are a no-op.
func (s *Store) ToggleComplete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.Find(s.tasks, id)
	if t == nil {
		return
	}
	t.Completed = !t.Completed
	s.persist(ctx)
}

// ToggleReminder flips the reminder flag. Turning it on with a due
// time set requests host scheduling; turning it off requests
// cancellation. Scheduling failures are logged, never rolled back into
// the flag. Unknown IDs are a no-op.
func (s *Store) ToggleReminder(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.Find(s.tasks, id)
	if t == nil {
		return
	}
	t.Reminder = !t.Reminder
	s.persist(ctx)

	if t.Reminder {
		s.schedule(ctx, *t)
	} else {
		s.cancel(ctx, t.ID)
	}
}

// Edit replaces title and description. The title must remain non-empty
// after trimming.
func (s *Store) Edit(ctx context.Context, id, title, description string) error {
	if strings.TrimSpace(title) == "" {
		return task.ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.Find(s.tasks, id)
	if t == nil {
		return task.ErrNotFound
	}
	t.Title = title
	t.Description = description
	s.persist(ctx)
	return nil
}

// Delete removes the matching task and persists the remainder. Any
// pending reminder for the task is cancelled. Unknown IDs are a no-op.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed *task.Task
	kept := s.tasks[:0]
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			removed = &t
			continue
		}
		kept = append(kept, s.tasks[i])
	}
	if removed == nil {
		return
	}
	s.tasks = kept
	s.persist(ctx)

	if removed.Reminder {
		s.cancel(ctx, removed.ID)
	}
}

// persist sorts and writes the full collection. Write failure is
// logged; in-memory state has already advanced and stays ahead of
// storage until the next successful write. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	task.Sort(s.tasks)

	data, err := task.Encode(s.tasks)
	if err != nil {
		s.logger.Error("encoding tasks failed", "err", err)
		return
	}

	opCtx, cancel := s.bound(ctx)
	defer cancel()
	if err := s.kv.Set(opCtx, kv.KeyTasks, string(data)); err != nil {
		s.logger.Error("persisting tasks failed", "err", err)
	}
}

// schedule requests one host notification for the task, fire and
// forget. Tasks without a due time never schedule.
func (s *Store) schedule(ctx context.Context, t task.Task) {
	if t.DueDateTime == nil {
		return
	}
	opCtx, cancel := s.bound(ctx)
	defer cancel()
	req := notify.NewRequest(t.ID, t.Title, *t.DueDateTime)
	if err := s.scheduler.Schedule(opCtx, req); err != nil {
		s.logger.Error("scheduling reminder failed", "task", t.ID, "err", err)
	}
}

func (s *Store) cancel(ctx context.Context, taskID string) {
	opCtx, cancel := s.bound(ctx)
	defer cancel()
	if err := s.scheduler.Cancel(opCtx, taskID); err != nil {
		s.logger.Error("cancelling reminder failed", "task", taskID, "err", err)
	}
}

func snapshot(tasks []task.Task) []task.Task {
	if tasks == nil {
		return nil
	}
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	return out
}
