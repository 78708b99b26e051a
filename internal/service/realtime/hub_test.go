package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
)

func newHub(bus Bus) (*Hub, task.Service, employee.Service) {
	tasks := task.NewKV(kvstore.NewMemory(), NewNotifier(bus, TopicTasks))
	employees := employee.NewKV(kvstore.NewMemory(), NewNotifier(bus, TopicEmployees))
	return NewHub(bus, tasks, employees), tasks, employees
}

func waitSnapshot[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case snap, ok := <-ch:
		require.True(t, ok, "snapshot channel closed")
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		panic("unreachable")
	}
}

func TestHubDeliversInitialAndRefreshedSnapshots(t *testing.T) {
	hub, tasks, _ := newHub(NewMemBus())
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	_, err := tasks.Create(ctx, task.Draft{Title: "before subscribe"}, nil)
	require.NoError(t, err)

	ch, cancel, err := hub.SubscribeTasks(ctx)
	require.NoError(t, err)
	defer cancel()

	snap := waitSnapshot(t, ch)
	require.Len(t, snap, 1)
	assert.Equal(t, "before subscribe", snap[0].Title)

	_, err = tasks.Create(ctx, task.Draft{Title: "after subscribe"}, nil)
	require.NoError(t, err)

	snap = waitSnapshot(t, ch)
	require.Len(t, snap, 2)
}

func TestHubEmployeeStreamIsIndependent(t *testing.T) {
	hub, tasks, employees := newHub(NewMemBus())
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	empCh, cancelEmp, err := hub.SubscribeEmployees(ctx)
	require.NoError(t, err)
	defer cancelEmp()
	waitSnapshot(t, empCh) // initial, empty

	_, err = employees.Add(ctx, "Dana Cole")
	require.NoError(t, err)

	snap := waitSnapshot(t, empCh)
	require.Len(t, snap, 1)
	assert.Equal(t, "Dana Cole", snap[0].Name)

	// a task mutation must not wake the employee stream
	_, err = tasks.Create(ctx, task.Draft{Title: "noise"}, nil)
	require.NoError(t, err)
	select {
	case got, ok := <-empCh:
		if ok {
			t.Fatalf("unexpected employee snapshot: %v", got)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubCancelStopsStream(t *testing.T) {
	hub, tasks, _ := newHub(NewMemBus())
	ctx := context.Background()

	ch, cancel, err := hub.SubscribeTasks(ctx)
	require.NoError(t, err)
	waitSnapshot(t, ch)

	cancel()

	_, err = tasks.Create(ctx, task.Draft{Title: "after cancel"}, nil)
	require.NoError(t, err)

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "stream should be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close after cancel")
	}
}

func TestMemBusCoalescesBursts(t *testing.T) {
	bus := NewMemBus()
	ctx := context.Background()

	ch, cancel, err := bus.Subscribe(ctx, TopicTasks)
	require.NoError(t, err)
	defer cancel()

	for i := 0; i < 10; i++ {
		require.NoError(t, bus.Publish(ctx, TopicTasks))
	}

	<-ch
	select {
	case <-ch:
		// at most one more may have landed after the first drain
		select {
		case <-ch:
			t.Fatal("burst was not coalesced")
		default:
		}
	default:
	}
}
