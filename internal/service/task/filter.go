package task

import "strings"

// Filter narrows a task listing. Every provided (non-empty) predicate must
// match; empty values match all. Filtering is a pure function re-evaluated
// over the full in-memory set; the collections here are far too small to
// justify indexes.
type Filter struct {
	Status     Status
	AssignedID string
	// Date matches tasks created on the given calendar day in local time,
	// formatted 2006-01-02.
	Date string
	// Text is a case-insensitive substring match over title, details and
	// the denormalized assignee name.
	Text string
}

func (f Filter) Match(t *Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.AssignedID != "" && t.AssignedID != f.AssignedID {
		return false
	}
	if f.Date != "" && t.CreatedAt.Local().Format("2006-01-02") != f.Date {
		return false
	}
	if f.Text != "" {
		hay := strings.ToLower(t.Title + " " + t.Details + " " + t.AssignedName)
		if !strings.Contains(hay, strings.ToLower(f.Text)) {
			return false
		}
	}
	return true
}

// Apply returns the matching tasks, preserving order.
func Apply(tasks []*Task, f Filter) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
