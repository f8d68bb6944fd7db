package runtime

import (
	"context"
	"log/slog"
	"sync"
)

// EventLoop runs posted handlers one at a time on a single goroutine.
// Auth notifications, snapshot deliveries and the completion of user
// actions all go through it, so handlers never race with each other.
// Post never blocks, even when called from a handler.
type EventLoop struct {
	log     *slog.Logger
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
}

func NewEventLoop(log *slog.Logger) *EventLoop {
	return &EventLoop{log: log, wake: make(chan struct{}, 1)}
}

// Post queues fn. Handlers run in posting order.
func (l *EventLoop) Post(fn func()) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes handlers until ctx is done. A panicking handler is lost,
// the supervisor restarts the loop with the remaining queue.
func (l *EventLoop) Run(ctx context.Context) error {
	for {
		for fn := l.next(); fn != nil; fn = l.next() {
			if ctx.Err() != nil {
				return nil
			}
			fn()
		}
		select {
		case <-ctx.Done():
			l.log.Debug("Context done, stopping event loop")
			return nil
		case <-l.wake:
		}
	}
}

func (l *EventLoop) next() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pending) == 0 {
		return nil
	}
	fn := l.pending[0]
	l.pending[0] = nil
	l.pending = l.pending[1:]
	return fn
}
