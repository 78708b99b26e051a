// Package realtime distributes change signals to live subscribers. Signals
// carry no payload: subscribers re-query the source and push a full
// snapshot, so a missed or coalesced signal costs nothing but latency.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	TopicTasks     = "taskdeck.changes.tasks"
	TopicEmployees = "taskdeck.changes.employees"
)

// Bus fans out change signals per topic. Subscribe channels are buffered
// and coalescing: bursts of publishes collapse into one pending signal.
type Bus interface {
	Publish(ctx context.Context, topic string) error
	Subscribe(ctx context.Context, topic string) (<-chan struct{}, func(), error)
}

type redisBus struct {
	rdb *redis.Client
}

// NewRedisBus carries signals over redis pub/sub so every replica sees
// mutations made through any other.
func NewRedisBus(rdb *redis.Client) Bus {
	return &redisBus{rdb: rdb}
}

func (b *redisBus) Publish(ctx context.Context, topic string) error {
	return b.rdb.Publish(ctx, topic, "changed").Err()
}

func (b *redisBus) Subscribe(ctx context.Context, topic string) (<-chan struct{}, func(), error) {
	sub := b.rdb.Subscribe(ctx, topic)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	out := make(chan struct{}, 1)
	var once sync.Once
	cancel := func() {
		once.Do(func() { _ = sub.Close() })
	}

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case _, ok := <-sub.Channel():
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default: // a signal is already pending
				}
			}
		}
	}()

	return out, cancel, nil
}

type memBus struct {
	mu   sync.Mutex
	subs map[string][]chan struct{}
}

// NewMemBus is a single-process Bus for tests and local setups without a
// running redis.
func NewMemBus() Bus {
	return &memBus{subs: make(map[string][]chan struct{})}
}

func (b *memBus) Publish(ctx context.Context, topic string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

func (b *memBus) Subscribe(ctx context.Context, topic string) (<-chan struct{}, func(), error) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			subs := b.subs[topic]
			for i, cand := range subs {
				if cand == ch {
					b.subs[topic] = append(subs[:i], subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
	}
	return ch, cancel, nil
}

// TopicNotifier publishes to a fixed topic after mutations. Publish errors
// are logged and dropped; a mutation never fails because a signal could not
// be delivered.
type TopicNotifier struct {
	bus   Bus
	topic string
}

func NewNotifier(bus Bus, topic string) *TopicNotifier {
	return &TopicNotifier{bus: bus, topic: topic}
}

func (n *TopicNotifier) NotifyChanged(ctx context.Context) {
	if err := n.bus.Publish(ctx, n.topic); err != nil {
		slog.Warn("change signal dropped", "topic", n.topic, "error", err)
	}
}
