package runtime

import (
	"sync"
	"talk/contract"
)

type Set map[string]struct{}

type Registry struct {
	mu                sync.RWMutex
	Sessions          map[string]contract.EventSink // map subscriber -> Sink
	CollectionMembers map[string]Set                // map collection path to subscribers
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions:          make(map[string]contract.EventSink),
		CollectionMembers: make(map[string]Set),
	}
}

// GetSinksForCollection retrieves the sinks watching a collection.
// Subscriber IDs are resolved through the sessions map so a subscriber owns
// a single sink. Returns nil if nobody watches the collection.
func (r *Registry) GetSinksForCollection(path string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.CollectionMembers[path]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for subscriberID := range members {
		if sink, exists := r.Sessions[subscriberID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a subscriber's sink on a collection.
// The collection entry is created on the fly.
func (r *Registry) Subscribe(subscriberID, path string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[subscriberID] = sink

	if _, ok := r.CollectionMembers[path]; !ok {
		r.CollectionMembers[path] = make(Set)
	}
	r.CollectionMembers[path][subscriberID] = struct{}{}
}

// Unsubscribe removes a subscriber and leaves no empty sets behind.
func (r *Registry) Unsubscribe(subscriberID, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.Sessions, subscriberID)

	if members, ok := r.CollectionMembers[path]; ok {
		delete(members, subscriberID)

		if len(members) == 0 {
			delete(r.CollectionMembers, path)
		}
	}
}
