package transport

import (
	"context"
	"sync"
)

// mailbox is an unbounded FIFO with a blocking, cancellable receive.
// Sends never block, so two ranks sending to each other cannot deadlock.
type mailbox[T any] struct {
	mu     sync.Mutex
	queue  []T
	notify chan struct{} // capacity 1; signalled whenever queue grows
	closed bool
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{notify: make(chan struct{}, 1)}
}

func (m *mailbox[T]) put(v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.queue = append(m.queue, v)
	select {
	case m.notify <- struct{}{}:
	default:
	}

	return nil
}

// take returns queued items before reporting ErrClosed.
func (m *mailbox[T]) take(ctx context.Context) (T, error) {
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			v := m.queue[0]
			var zero T
			m.queue[0] = zero
			m.queue = m.queue[1:]
			m.mu.Unlock()
			return v, nil
		}
		if m.closed {
			m.mu.Unlock()
			var zero T
			return zero, ErrClosed
		}
		m.mu.Unlock()

		select {
		case <-m.notify:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func (m *mailbox[T]) close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		select {
		case m.notify <- struct{}{}:
		default:
		}
	}
}
