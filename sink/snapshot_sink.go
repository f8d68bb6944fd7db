package sink

import (
	"context"
	"sync"
	"talk/domain/event"
)

// SnapshotSink buffers snapshots for one subscriber connection.
// Each snapshot carries the whole collection, so when the buffer is full
// the oldest undelivered snapshot is dropped in favour of the new one.
type SnapshotSink struct {
	mu        sync.Mutex
	Snapshots chan event.Snapshot
}

func NewSnapshotSink(bufferSize int) *SnapshotSink {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &SnapshotSink{Snapshots: make(chan event.Snapshot, bufferSize)}
}

// Consume is called by the fanout. The subscription handler drains
// Snapshots and forwards them to the client.
func (s *SnapshotSink) Consume(ctx context.Context, snapshot event.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		select {
		case s.Snapshots <- snapshot:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
			select {
			case <-s.Snapshots:
			default:
			}
		}
	}
}
