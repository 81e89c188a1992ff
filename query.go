package docket

import (
	"sort"
	"time"
)

// ListOptions select a view of the collection. Unrecognized values degrade
// to "no filter" / "no sort" rather than erroring.
type ListOptions struct {
	Filter string // "completed", "not-completed", "high-priority"
	SortBy string // "deadline", "priority"
}

// applyQuery filters first, then sorts. Pure function over the slice it is
// handed; callers pass a snapshot they own.
func applyQuery(tasks []Task, opts ListOptions) []Task {
	tasks = applyFilter(tasks, opts.Filter)

	switch opts.SortBy {
	case "deadline":
		sort.SliceStable(tasks, func(i, j int) bool {
			di, iok := parseDeadline(tasks[i].Deadline)
			dj, jok := parseDeadline(tasks[j].Deadline)
			if iok != jok {
				// Tasks without a usable deadline sort after all that have one.
				return iok
			}
			if !iok {
				return false
			}
			return di.Before(dj)
		})
	case "priority":
		sort.SliceStable(tasks, func(i, j int) bool {
			return priorityRank(tasks[i].Priority) < priorityRank(tasks[j].Priority)
		})
	}

	return tasks
}

func applyFilter(tasks []Task, filter string) []Task {
	var keep func(Task) bool
	switch filter {
	case "completed":
		keep = func(t Task) bool { return t.Status == StatusCompleted }
	case "not-completed":
		keep = func(t Task) bool { return t.Status != StatusCompleted }
	case "high-priority":
		keep = func(t Task) bool { return t.Priority == PriorityHigh }
	default:
		return tasks
	}

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Deadlines are stored verbatim; sorting accepts full RFC 3339, the HTML
// datetime-local shape, or a bare date.
var deadlineLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func parseDeadline(deadline *string) (time.Time, bool) {
	if deadline == nil {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if ts, err := time.Parse(layout, *deadline); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}
