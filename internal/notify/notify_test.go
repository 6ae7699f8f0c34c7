package notify

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestNewRequest(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	req := NewRequest("1749547800000", "Buy milk", at)

	if req.ID == "" {
		t.Error("request ID must be assigned")
	}
	if req.TaskID != "1749547800000" {
		t.Errorf("TaskID = %q", req.TaskID)
	}
	if req.Title != "Task Reminder" {
		t.Errorf("Title = %q, want Task Reminder", req.Title)
	}
	if req.Body != "Don't forget: Buy milk" {
		t.Errorf("Body = %q", req.Body)
	}
	if !req.TriggerAt.Equal(at) {
		t.Errorf("TriggerAt = %v", req.TriggerAt)
	}

	if NewRequest("x", "y", at).ID == req.ID {
		t.Error("request IDs must be unique")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	req := NewRequest("1", "x", time.Now())
	if err := r.Schedule(ctx, req); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if err := r.Cancel(ctx, "1"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if len(r.Scheduled) != 1 || r.Scheduled[0].TaskID != "1" {
		t.Errorf("Scheduled = %v", r.Scheduled)
	}
	if len(r.Cancelled) != 1 || r.Cancelled[0] != "1" {
		t.Errorf("Cancelled = %v", r.Cancelled)
	}
}

// TestCommandScheduler drives a shell script that records its argv, and
// checks the wire contract both subcommands present to the notifier.
func TestCommandScheduler(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test notifier is a shell script")
	}

	dir := t.TempDir()
	outPath := filepath.Join(dir, "argv.txt")
	script := filepath.Join(dir, "notifier.sh")
	body := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + outPath + "\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	s := NewCommandScheduler(script)
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	req := Request{ID: "req-1", TaskID: "42", Title: "Task Reminder", Body: "Don't forget: x", TriggerAt: at}

	if err := s.Schedule(context.Background(), req); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"schedule", "req-1", "42", "2025-06-10T09:00:00Z", "Task Reminder", "Don't forget: x"}
	if lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n"); len(lines) != len(want) {
		t.Fatalf("argv = %q, want %v", got, want)
	} else {
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("argv[%d] = %q, want %q", i, lines[i], want[i])
			}
		}
	}

	if err := s.Cancel(context.Background(), "42"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	got, _ = os.ReadFile(outPath)
	if strings.TrimRight(string(got), "\n") != "cancel\n42" {
		t.Errorf("cancel argv = %q", got)
	}
}

func TestCommandSchedulerEmptyCommand(t *testing.T) {
	s := NewCommandScheduler("")
	if err := s.Schedule(context.Background(), Request{}); err != nil {
		t.Errorf("empty command Schedule: %v", err)
	}
	if err := s.Cancel(context.Background(), "1"); err != nil {
		t.Errorf("empty command Cancel: %v", err)
	}
}
