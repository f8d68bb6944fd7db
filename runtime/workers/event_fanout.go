package workers

import (
	"context"
	"log/slog"
	"talk/contract"
	"talk/domain/event"
	"talk/repositories"
	"time"
)

// EventFanout turns store events into collection snapshots.
//
// For every event it reloads the affected collection once and pushes the
// full member set to each sink watching it. Sinks are consumed one after the
// other so a sink never receives an older snapshot after a newer one.
// A sink slower than sinkTimeout is skipped for that snapshot.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	repository  repositories.IDocumentRepository
	events      chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry,
	repository repositories.IDocumentRepository, events chan event.DomainEvent,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		registry:    registry,
		repository:  repository,
		events:      events,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		}
	}
}

// Fanout delivers the snapshot of the event's collection to its sinks.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	path := evt.CollectionPath()
	sinks := w.registry.GetSinksForCollection(path)
	if len(sinks) == 0 {
		return
	}

	docs, err := w.repository.List(path)
	if err != nil {
		w.log.Error("Unable to load collection snapshot", "path", path, "error", err)
		return
	}
	snapshot := event.Snapshot{Path: path, Documents: docs}

	for _, sink := range sinks {
		w.consume(ctx, sink, snapshot)
	}
}

func (w *EventFanout) consume(ctx context.Context, sink contract.EventSink, snapshot event.Snapshot) {
	sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()
	if err := sink.Consume(sinkCtx, snapshot); err != nil {
		w.log.Warn("Sink did not consume snapshot", "path", snapshot.Path, "error", err)
	}
}
