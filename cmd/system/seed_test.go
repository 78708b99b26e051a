package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
)

func TestSeedSampleTasks(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	employees := employee.NewKV(store, nil)
	tasks := task.NewKV(store, nil)

	require.NoError(t, employees.SeedStarter(ctx))
	require.NoError(t, seedSampleTasks(ctx, employees, tasks))

	got, err := tasks.List(ctx, task.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	byTitle := make(map[string]*task.Task)
	for _, tk := range got {
		byTitle[tk.Title] = tk
	}
	closed := byTitle["Add social media links to web design"]
	require.NotNil(t, closed)
	assert.Equal(t, task.StatusClosed, closed.Status)
	assert.Equal(t, employee.StarterNames[0], closed.AssignedName)
	require.NotNil(t, closed.Deadline)

	open := byTitle["Database not set up correctly"]
	require.NotNil(t, open)
	assert.Equal(t, task.StatusOpen, open.Status)
	assert.Equal(t, employee.StarterNames[1], open.AssignedName)
}

func TestSeedSampleTasksSkipsNonEmptyBoard(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	employees := employee.NewKV(store, nil)
	tasks := task.NewKV(store, nil)

	require.NoError(t, employees.SeedStarter(ctx))
	_, err := tasks.Create(ctx, task.Draft{Title: "already here"}, nil)
	require.NoError(t, err)

	require.NoError(t, seedSampleTasks(ctx, employees, tasks))

	got, err := tasks.List(ctx, task.Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
