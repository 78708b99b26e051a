package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck_backend/internal/service/task"
)

func TestWriteTasks(t *testing.T) {
	deadline := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	tasks := []*task.Task{
		{
			Title:        "Fix, with comma",
			Details:      "line one\nline two",
			AssignedName: "Priya Sharma",
			CreatedAt:    time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC),
			Deadline:     &deadline,
			Status:       task.StatusInProgress,
			Attachments: []task.Attachment{
				{Name: "spec", External: true, URL: "https://example.com/spec"},
				{Name: "scan.png", DataURL: "data:image/png;base64,AAAA"},
			},
		},
		{
			Title:     "No extras",
			CreatedAt: time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC),
			Status:    task.StatusOpen,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTasks(&buf, tasks))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Title", "Details", "Assigned", "Created At", "Deadline",
		"Status", "AttachmentsCount", "AttachmentLinks",
	}, records[0])

	assert.Equal(t, []string{
		"Fix, with comma",
		"line one\nline two",
		"Priya Sharma",
		"2025-04-01",
		"2025-04-20",
		"In-progress",
		"2",
		"https://example.com/spec | [embedded]",
	}, records[1])

	assert.Equal(t, []string{
		"No extras", "", "", "2025-04-02", "-", "Open", "0", "",
	}, records[2])
}

func TestWriteTasksEmptyListStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTasks(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
