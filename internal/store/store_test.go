package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SurajChaurasia84/TaskManager/internal/kv"
	"github.com/SurajChaurasia84/TaskManager/internal/notify"
	"github.com/SurajChaurasia84/TaskManager/internal/task"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore, *notify.Recorder) {
	t.Helper()
	mem := kv.NewMemory()
	rec := notify.NewRecorder()
	s := New(mem, rec, nil, WithClock(func() time.Time { return testNow }))
	return s, mem, rec
}

func TestAddPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	added, err := s.Add(ctx, Draft{Title: "Buy milk", Description: "2%"})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", added.Title)
	assert.NotEmpty(t, added.ID)
	require.NotNil(t, added.DueDateTime)
	assert.True(t, added.DueDateTime.Equal(testNow), "due defaults to creation time")

	// A fresh store over the same persistence sees the same task.
	s2 := New(mem, nil, nil)
	got, err := s2.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, added.ID, got[0].ID)
	assert.Equal(t, "Buy milk", got[0].Title)
	assert.Equal(t, "2%", got[0].Description)
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	s, _, _ := newTestStore(t)
	_, err := s.Add(context.Background(), Draft{Title: "   "})
	assert.ErrorIs(t, err, task.ErrEmptyTitle)
	assert.Empty(t, s.Tasks())
}

func TestAddAssignsUniqueIDsWithinSameMillisecond(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	a, err := s.Add(ctx, Draft{Title: "a"})
	require.NoError(t, err)
	b, err := s.Add(ctx, Draft{Title: "b"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddPrependsNewest(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	_, err := s.Add(ctx, Draft{Title: "first"})
	require.NoError(t, err)
	_, err = s.Add(ctx, Draft{Title: "second"})
	require.NoError(t, err)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].Title)
}

func TestToggleCompleteIsIdempotentPair(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	added, err := s.Add(ctx, Draft{Title: "x"})
	require.NoError(t, err)

	s.ToggleComplete(ctx, added.ID)
	assert.True(t, s.Tasks()[0].Completed)
	s.ToggleComplete(ctx, added.ID)
	assert.False(t, s.Tasks()[0].Completed)
}

func TestToggleCompleteUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	_, err := s.Add(ctx, Draft{Title: "x"})
	require.NoError(t, err)

	before := s.Tasks()
	s.ToggleComplete(ctx, "missing")
	assert.Equal(t, before, s.Tasks())
}

func TestPersistedOrderPartitionsByCompletion(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)

	a, _ := s.Add(ctx, Draft{Title: "a"})
	_, err := s.Add(ctx, Draft{Title: "b"})
	require.NoError(t, err)
	s.ToggleComplete(ctx, a.ID)

	raw, ok, err := mem.Get(ctx, kv.KeyTasks)
	require.NoError(t, err)
	require.True(t, ok)
	persisted, err := task.Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.False(t, persisted[0].Completed)
	assert.True(t, persisted[1].Completed)
}

func TestReminderOnSchedulesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	s, _, rec := newTestStore(t)

	due := testNow.Add(time.Hour)
	added, err := s.Add(ctx, Draft{Title: "Call dentist", DueDateTime: &due})
	require.NoError(t, err)
	assert.Empty(t, rec.Scheduled, "no request until the reminder is switched on")

	s.ToggleReminder(ctx, added.ID)

	require.Len(t, rec.Scheduled, 1)
	req := rec.Scheduled[0]
	assert.Equal(t, added.ID, req.TaskID)
	assert.Contains(t, req.Body, "Call dentist")
	assert.True(t, req.TriggerAt.Equal(due))
	assert.Empty(t, rec.Cancelled)
}

func TestReminderOffCancels(t *testing.T) {
	ctx := context.Background()
	s, _, rec := newTestStore(t)

	added, err := s.Add(ctx, Draft{Title: "x", Reminder: true})
	require.NoError(t, err)
	require.Len(t, rec.Scheduled, 1)

	s.ToggleReminder(ctx, added.ID)

	assert.False(t, s.Tasks()[0].Reminder)
	require.Len(t, rec.Cancelled, 1)
	assert.Equal(t, added.ID, rec.Cancelled[0])
	assert.Len(t, rec.Scheduled, 1, "no new request on switch-off")
}

func TestDeleteCancelsPendingReminder(t *testing.T) {
	ctx := context.Background()
	s, _, rec := newTestStore(t)

	keep, err := s.Add(ctx, Draft{Title: "keep"})
	require.NoError(t, err)
	gone, err := s.Add(ctx, Draft{Title: "gone", Reminder: true})
	require.NoError(t, err)

	s.Delete(ctx, gone.ID)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
	require.Len(t, rec.Cancelled, 1)
	assert.Equal(t, gone.ID, rec.Cancelled[0])
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _, rec := newTestStore(t)
	_, err := s.Add(ctx, Draft{Title: "x"})
	require.NoError(t, err)

	s.Delete(ctx, "missing")
	assert.Len(t, s.Tasks(), 1)
	assert.Empty(t, rec.Cancelled)
}

func TestSchedulingFailureDoesNotRollBackFlag(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	rec := notify.NewRecorder()
	rec.FailSchedule = errors.New("host notifier down")
	s := New(mem, rec, nil, WithClock(func() time.Time { return testNow }))

	added, err := s.Add(ctx, Draft{Title: "x"})
	require.NoError(t, err)
	s.ToggleReminder(ctx, added.ID)

	assert.True(t, s.Tasks()[0].Reminder, "flag stays on despite scheduler failure")
}

func TestEdit(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	added, err := s.Add(ctx, Draft{Title: "old", Description: "desc"})
	require.NoError(t, err)

	require.NoError(t, s.Edit(ctx, added.ID, "new", ""))
	got := s.Tasks()[0]
	assert.Equal(t, "new", got.Title)
	assert.Empty(t, got.Description)

	assert.ErrorIs(t, s.Edit(ctx, added.ID, "  ", "x"), task.ErrEmptyTitle)
	assert.ErrorIs(t, s.Edit(ctx, "missing", "t", ""), task.ErrNotFound)
}

func TestLoadMissingKeyYieldsEmpty(t *testing.T) {
	s, _, _ := newTestStore(t)
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMalformedPayloadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, kv.KeyTasks, `{"not":"an array"}`))

	s := New(mem, nil, nil)
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "malformed payload degrades to an empty collection")
}

func TestWriteFailureLeavesMemoryAhead(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := New(mem, nil, nil, WithClock(func() time.Time { return testNow }))

	mem.FailSets = errors.New("disk full")
	added, err := s.Add(ctx, Draft{Title: "x"})
	require.NoError(t, err, "add succeeds even when the write fails")
	assert.Len(t, s.Tasks(), 1)

	// Nothing reached storage; the next successful write catches up.
	_, ok, _ := mem.Get(ctx, kv.KeyTasks)
	assert.False(t, ok)

	mem.FailSets = nil
	s.ToggleComplete(ctx, added.ID)
	raw, ok, _ := mem.Get(ctx, kv.KeyTasks)
	require.True(t, ok)
	persisted, err := task.Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].Completed)
}

func TestTasksReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	_, err := s.Add(ctx, Draft{Title: "x"})
	require.NoError(t, err)

	snap := s.Tasks()
	snap[0].Title = "mutated"
	assert.Equal(t, "x", s.Tasks()[0].Title)
}

func TestLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	s, mem, rec := newTestStore(t)

	due := testNow.Add(2 * time.Hour)
	groceries, err := s.Add(ctx, Draft{Title: "Groceries", DueDateTime: &due})
	require.NoError(t, err)
	dentist, err := s.Add(ctx, Draft{Title: "Dentist", Reminder: true})
	require.NoError(t, err)

	s.ToggleReminder(ctx, groceries.ID)
	s.ToggleComplete(ctx, groceries.ID)
	s.Delete(ctx, dentist.ID)

	// One reload later everything agrees with the walked sequence.
	s2 := New(mem, nil, nil)
	got, err := s2.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Groceries", got[0].Title)
	assert.True(t, got[0].Completed)
	assert.True(t, got[0].Reminder)

	assert.Len(t, rec.Scheduled, 2, "one for each reminder switch-on")
	require.Len(t, rec.Cancelled, 1)
	assert.Equal(t, dentist.ID, rec.Cancelled[0])
}
