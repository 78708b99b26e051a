package realtime

import (
	"context"
	"log/slog"

	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
)

// TaskSource and EmployeeSource are the read sides the hub snapshots from.
// They are satisfied by the service interfaces without the hub importing
// their constructors.
type TaskSource interface {
	List(ctx context.Context, f task.Filter) ([]*task.Task, error)
}

type EmployeeSource interface {
	List(ctx context.Context) ([]*employee.Employee, error)
}

// Hub turns bus signals into full snapshots. Every subscriber gets the
// current state immediately and a fresh snapshot after each change signal.
type Hub struct {
	bus       Bus
	tasks     TaskSource
	employees EmployeeSource
}

func NewHub(bus Bus, tasks TaskSource, employees EmployeeSource) *Hub {
	return &Hub{bus: bus, tasks: tasks, employees: employees}
}

// SubscribeTasks streams task snapshots until cancel is called or ctx ends.
func (h *Hub) SubscribeTasks(ctx context.Context) (<-chan []*task.Task, func(), error) {
	return subscribe(ctx, h.bus, TopicTasks, func(ctx context.Context) ([]*task.Task, error) {
		return h.tasks.List(ctx, task.Filter{})
	})
}

// SubscribeEmployees streams employee snapshots until cancel is called or
// ctx ends.
func (h *Hub) SubscribeEmployees(ctx context.Context) (<-chan []*employee.Employee, func(), error) {
	return subscribe(ctx, h.bus, TopicEmployees, h.employees.List)
}

// subscribe bridges a coalescing signal channel to a latest-wins snapshot
// channel. A slow consumer sees fewer, newer snapshots, never stale ones.
func subscribe[T any](ctx context.Context, bus Bus, topic string, fetch func(context.Context) (T, error)) (<-chan T, func(), error) {
	signals, cancel, err := bus.Subscribe(ctx, topic)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan T, 1)
	push := func(snap T) {
		select {
		case out <- snap:
		default:
			select { // replace the undelivered snapshot
			case <-out:
			default:
			}
			select {
			case out <- snap:
			default:
			}
		}
	}

	go func() {
		defer close(out)

		snap, err := fetch(ctx)
		if err != nil {
			slog.Error("initial snapshot failed", "topic", topic, "error", err)
		} else {
			push(snap)
		}

		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				snap, err := fetch(ctx)
				if err != nil {
					slog.Error("snapshot refresh failed", "topic", topic, "error", err)
					continue
				}
				push(snap)
			}
		}
	}()

	return out, cancel, nil
}
