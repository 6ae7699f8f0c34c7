package notify

import (
	"context"
	"sync"
)

// Recorder is a Scheduler that records requests for inspection in
// tests.
type Recorder struct {
	mu        sync.Mutex
	Scheduled []Request
	Cancelled []string

	// FailSchedule, when non-nil, is returned by every Schedule call.
	FailSchedule error
}

// NewRecorder returns an empty recording scheduler.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Schedule records the request.
func (r *Recorder) Schedule(ctx context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailSchedule != nil {
		return r.FailSchedule
	}
	r.Scheduled = append(r.Scheduled, req)
	return nil
}

// Cancel records the task ID.
func (r *Recorder) Cancel(ctx context.Context, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cancelled = append(r.Cancelled, taskID)
	return nil
}
