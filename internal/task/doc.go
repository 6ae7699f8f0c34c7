// Package task defines the persisted task record, the persistence
// codec, and the pure projections the views render.
//
// The persisted payload (the "tasks" key in the key-value store) is a
// JSON array validated against tasks.schema.json:
//
//	[
//	  {
//	    "id": "1735689600000",
//	    "title": "Pay rent",
//	    "description": "Optional free text",
//	    "image": "/path/to/picked/image.png",
//	    "dueDateTime": "2025-01-01T09:00:00Z",
//	    "completed": false,
//	    "reminder": true
//	  }
//	]
//
// There is no schema version field and no migration path; newer builds
// must tolerate absent optional fields on read.
//
// # Sort policy
//
// Sort is applied before every persist: incomplete tasks precede
// completed tasks, stable within each partition.
//
// # Day grouping
//
// GroupByDay buckets tasks by calendar date with the labels "Today",
// "Yesterday", a short date, or "No Date" for undated tasks. Buckets
// order most-recent-first; the undated bucket is keyed at epoch zero
// and therefore sinks to the oldest position.
package task
