// Package event defines what flows through the backend fan-out pipeline.
package event

import (
	"talk/domain"
	"time"
)

// DomainEvent is anything the fan-out can route to a collection's subscribers.
type DomainEvent interface {
	CollectionPath() string
}

// DocumentAppended is raised once a document has been durably stored.
type DocumentAppended struct {
	Path       string
	DocumentID string
	At         time.Time
}

func (d DocumentAppended) CollectionPath() string { return d.Path }

// Snapshot carries the full member set of a collection after a change.
type Snapshot struct {
	Path      string
	Documents []domain.Document
}

func (s Snapshot) CollectionPath() string { return s.Path }
