package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []*Task {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 10, 0, 0, 0, time.Local)
	}
	return []*Task{
		{ID: "1", Title: "Fix login page", Details: "OAuth redirect loops", AssignedID: "e1", AssignedName: "Priya Sharma", CreatedAt: day(1), Status: StatusOpen},
		{ID: "2", Title: "Quarterly report", Details: "waiting on finance", AssignedID: "e2", AssignedName: "Adam Baker", CreatedAt: day(1), Status: StatusWaitingClient},
		{ID: "3", Title: "Upgrade database", Details: "", AssignedID: "e1", AssignedName: "Priya Sharma", CreatedAt: day(2), Status: StatusInProgress},
		{ID: "4", Title: "Archive old tickets", Details: "done last sprint", CreatedAt: day(3), Status: StatusClosed},
	}
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	tasks := sampleTasks()
	assert.Len(t, Apply(tasks, Filter{}), len(tasks))
}

func TestFilterSingleFields(t *testing.T) {
	tasks := sampleTasks()

	got := Apply(tasks, Filter{Status: StatusInProgress})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "3", got[0].ID)
	}

	got = Apply(tasks, Filter{AssignedID: "e1"})
	assert.Len(t, got, 2)

	got = Apply(tasks, Filter{Date: "2025-03-01"})
	assert.Len(t, got, 2)

	got = Apply(tasks, Filter{Text: "REPORT"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2", got[0].ID)
	}
}

func TestFilterTextSearchesDetailsAndAssignee(t *testing.T) {
	tasks := sampleTasks()

	got := Apply(tasks, Filter{Text: "oauth"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "1", got[0].ID)
	}

	// assignee name is part of the searched text
	got = Apply(tasks, Filter{Text: "priya"})
	assert.Len(t, got, 2)
}

func TestFilterConjunction(t *testing.T) {
	tasks := sampleTasks()

	// both predicates match task 1 individually but only together narrow to it
	got := Apply(tasks, Filter{AssignedID: "e1", Status: StatusOpen})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "1", got[0].ID)
	}

	// individually matching predicates that never co-occur yield nothing
	got = Apply(tasks, Filter{AssignedID: "e2", Status: StatusClosed})
	assert.Empty(t, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	tasks := sampleTasks()
	got := Apply(tasks, Filter{AssignedID: "e1"})
	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	}
}
