// Package kv provides the local key-value store the task manager
// persists into: a handful of string keys behind a get/set interface.
package kv

import "context"

// Keys used by the application. The tasks payload is a JSON array;
// the other two are plain strings.
const (
	KeyTasks       = "tasks"
	KeyUsername    = "username"
	KeyHasLaunched = "hasLaunched"
)

// Store is a minimal string key-value store. Get reports ok=false for
// an absent key; Set overwrites unconditionally (single local writer).
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
