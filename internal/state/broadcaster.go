package state

import (
	"context"
	"sync"

	"github.com/cravebuster/cravebuster/internal/metrics"
)

// broadcaster fans snapshots out to subscribers. Each subscriber channel has
// room for one value; a slow reader only ever sees the newest snapshot.
type broadcaster[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]chan T
	closed bool
}

func newBroadcaster[T any]() *broadcaster[T] {
	return &broadcaster[T]{subs: make(map[uint64]chan T)}
}

func (b *broadcaster[T]) subscribe(initial T) (<-chan T, func()) {
	ch := make(chan T, 1)
	ch <- initial

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	metrics.StateSubscribers.Add(context.Background(), 1)

	var once sync.Once
	cancel := func() {
		once.Do(func() { b.remove(id) })
	}
	return ch, cancel
}

func (b *broadcaster[T]) remove(id uint64) {
	b.mu.Lock()
	ch, open := b.subs[id]
	if open {
		delete(b.subs, id)
		close(ch)
	}
	b.mu.Unlock()

	if open {
		metrics.StateSubscribers.Add(context.Background(), -1)
	}
}

func (b *broadcaster[T]) broadcast(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- v:
			continue
		default:
		}
		// Replace the stale value the reader has not picked up yet.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// close ends every subscription and refuses new ones. A reader still gets
// the value already buffered before it sees the closed channel.
func (b *broadcaster[T]) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
		metrics.StateSubscribers.Add(context.Background(), -1)
	}
}

func (b *broadcaster[T]) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
