//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"talk/domain"
	"talk/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// It is only used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives the snapshots of the collections it subscribed to.
type EventSink interface {
	Consume(ctx context.Context, snapshot event.Snapshot) error
}

type IRegistry interface {
	GetSinksForCollection(path string) []EventSink
	Subscribe(subscriberID, path string, sink EventSink)
	Unsubscribe(subscriberID, path string)
}

type IDispatcher interface {
	Dispatch(evt event.DomainEvent)
}

// IEventLoop queues handlers that must run one at a time.
type IEventLoop interface {
	Post(fn func())
}

// Unsubscribe tears a subscription down. Calling it twice is harmless.
type Unsubscribe func()

// IAuthProvider is the auth collaborator seen by the screens.
// OnAuthStateChanged delivers the current identity (nil when signed out)
// right away and again on every change.
type IAuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (domain.Identity, error)
	CreateAccount(ctx context.Context, email, password string) (domain.Identity, error)
	UpdateProfile(ctx context.Context, displayName string) (domain.Identity, error)
	SignInAnonymously(ctx context.Context) (domain.Identity, error)
	SignInWithCustomToken(ctx context.Context, token string) (domain.Identity, error)
	SignOut(ctx context.Context) error
	OnAuthStateChanged(fn func(identity *domain.Identity)) Unsubscribe
}

// IMessageStore is the document collaborator seen by the feed.
// OnSnapshot re-delivers the full member set of the collection on every change.
type IMessageStore interface {
	AppendDocument(ctx context.Context, path string, fields map[string]any) (string, error)
	OnSnapshot(path string, onChange func(docs []domain.Document), onError func(err error)) Unsubscribe
}

// IAuthBackend is the wire-level auth API, remote or embedded.
type IAuthBackend interface {
	SignInWithPassword(ctx context.Context, email, password string) (domain.AuthSession, error)
	CreateAccount(ctx context.Context, email, password string) (domain.AuthSession, error)
	UpdateProfile(ctx context.Context, token, displayName string) (domain.Identity, error)
	SignInAnonymously(ctx context.Context) (domain.AuthSession, error)
	SignInWithCustomToken(ctx context.Context, customToken string) (domain.AuthSession, error)
}

// IDocumentBackend is the wire-level document API, remote or embedded.
// Subscribe blocks, calling onSnapshot for every change, until ctx is
// done or the subscription fails.
type IDocumentBackend interface {
	Append(ctx context.Context, token, path string, doc domain.Document, serverTimestamps []string) (domain.Document, error)
	Subscribe(ctx context.Context, token, path string, onSnapshot func(docs []domain.Document)) error
}
