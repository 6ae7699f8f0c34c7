package task

import (
	"sort"
	"strings"
	"time"
)

// sameDay reports whether two instants fall on the same calendar date
// in loc.
func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DueOn returns the tasks whose due date falls on the same calendar
// date as day (in day's location). Undated tasks never match.
func DueOn(tasks []Task, day time.Time) []Task {
	var out []Task
	for _, t := range tasks {
		if t.DueDateTime != nil && sameDay(*t.DueDateTime, day, day.Location()) {
			out = append(out, t)
		}
	}
	return out
}

// Search returns the tasks whose title or description contains query,
// case-insensitively. An empty query matches everything.
func Search(tasks []Task, query string) []Task {
	q := strings.ToLower(query)
	var out []Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns the tasks with a due time strictly later than now.
func Upcoming(tasks []Task, now time.Time) []Task {
	var out []Task
	for _, t := range tasks {
		if t.DueDateTime != nil && t.DueDateTime.After(now) {
			out = append(out, t)
		}
	}
	return out
}

// UpcomingReminders returns the tasks with the reminder flag on and a
// due time still in the future. This is the reminders screen's list.
func UpcomingReminders(tasks []Task, now time.Time) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Reminder && t.DueDateTime != nil && t.DueDateTime.After(now) {
			out = append(out, t)
		}
	}
	return out
}

// Progress returns completed and total counts for a task slice.
func Progress(tasks []Task) (completed, total int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return completed, len(tasks)
}

// NoDateLabel is the bucket label for tasks without a due date.
const NoDateLabel = "No Date"

// DayGroup is one day-bucket of tasks in the grouped list view.
type DayGroup struct {
	Label string
	Date  time.Time
	Tasks []Task
}

// DayLabel renders the day-bucket label for an instant relative to now:
// "Today", "Yesterday", or a short date.
func DayLabel(d, now time.Time) string {
	loc := now.Location()
	if sameDay(d, now, loc) {
		return "Today"
	}
	if sameDay(d, now.AddDate(0, 0, -1), loc) {
		return "Yesterday"
	}
	return d.In(loc).Format("Jan 2, 2006")
}

// GroupByDay partitions tasks into day buckets, most recent date first.
// Tasks without a due date go into the "No Date" bucket, which is keyed
// at epoch zero so it sinks to the oldest position.
func GroupByDay(tasks []Task, now time.Time) []DayGroup {
	loc := now.Location()
	buckets := make(map[string]*DayGroup)
	var order []string

	for _, t := range tasks {
		var key string
		var date time.Time
		if t.DueDateTime == nil {
			key = NoDateLabel
			date = time.Unix(0, 0)
		} else {
			local := t.DueDateTime.In(loc)
			y, m, d := local.Date()
			date = time.Date(y, m, d, 0, 0, 0, 0, loc)
			key = DayLabel(local, now)
		}
		g, ok := buckets[key]
		if !ok {
			g = &DayGroup{Label: key, Date: date}
			buckets[key] = g
			order = append(order, key)
		}
		g.Tasks = append(g.Tasks, t)
	}

	groups := make([]DayGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *buckets[key])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

// SortByDue orders tasks by due date. Undated tasks sort last in both
// directions.
func SortByDue(tasks []Task, newestFirst bool) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DueDateTime, out[j].DueDateTime
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if newestFirst {
			return a.After(*b)
		}
		return a.Before(*b)
	})
	return out
}
