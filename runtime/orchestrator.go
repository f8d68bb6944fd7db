// Package runtime wires the backend pipeline and the client event loop.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"talk/contract"
	"talk/domain/event"
	"talk/repositories"
	"talk/runtime/workers"
	"time"
)

// Orchestrator owns the document events channel and the supervised
// fan-out worker delivering snapshots to the subscribers.
type Orchestrator struct {
	mu          sync.Mutex
	log         *slog.Logger
	supervisor  contract.ISupervisor
	registry    contract.IRegistry
	repository  repositories.IDocumentRepository
	events      chan event.DomainEvent
	sinkTimeout time.Duration
	done        chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, registry contract.IRegistry,
	repository repositories.IDocumentRepository, bufferSize int, sinkTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		log:         log,
		supervisor:  supervisor,
		registry:    registry,
		repository:  repository,
		events:      make(chan event.DomainEvent, bufferSize),
		sinkTimeout: sinkTimeout,
	}
}

// Dispatch queues an event for the fan-out. It never blocks the caller:
// when the channel is full the event is dropped, the next one carries the
// full collection anyway.
func (o *Orchestrator) Dispatch(evt event.DomainEvent) {
	select {
	case o.events <- evt:
	default:
		o.log.Warn("Event channel full, dropping event", "path", evt.CollectionPath())
	}
}

// Start registers the fan-out worker and runs the supervisor in the background.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done != nil {
		return
	}

	fanout := workers.NewEventFanout(o.log, o.registry, o.repository, o.events, o.sinkTimeout)
	o.supervisor.Add(fanout)

	o.done = make(chan struct{})
	go func() {
		defer close(o.done)
		o.log.Info("Starting orchestrator and all supervised workers")
		o.supervisor.Run(ctx)
	}()
}

// Stop cancels the supervised workers and waits for them.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()

	o.mu.Lock()
	done := o.done
	o.mu.Unlock()
	if done != nil {
		<-done
	}
}
