package provider

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"talk/contract"
	"talk/domain"
	"talk/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// TokenSource hands out the bearer token of the current session.
type TokenSource interface {
	Token() string
}

// Store implements the message store over a document backend.
//
// Appends are applied locally before the backend confirms them: the pending
// document is shown to the collection's watchers without its server
// timestamps until a snapshot containing it arrives. A failed append removes
// the pending document again.
type Store struct {
	log      *slog.Logger
	backend  contract.IDocumentBackend
	tokens   TokenSource
	mu       sync.Mutex
	pending  map[string][]domain.Document
	watchers map[string]map[int]*watcher
	nextID   int
}

type watcher struct {
	deliverMu sync.Mutex
	onChange  func(docs []domain.Document)
	received  bool
	closed    bool
	last      []domain.Document
}

func NewStore(log *slog.Logger, backend contract.IDocumentBackend, tokens TokenSource) *Store {
	return &Store{
		log:      log,
		backend:  backend,
		tokens:   tokens,
		pending:  make(map[string][]domain.Document),
		watchers: make(map[string]map[int]*watcher),
	}
}

// AppendDocument adds a document with a client generated id. Fields set to
// domain.ServerTimestamp are filled by the backend.
func (s *Store) AppendDocument(ctx context.Context, path string, fields map[string]any) (string, error) {
	token := s.tokens.Token()
	if token == "" {
		return "", errors.ErrNoSession
	}

	local := make(map[string]any, len(fields))
	maps.Copy(local, fields)
	var serverTimestamps []string
	for name, value := range local {
		if domain.IsServerTimestamp(value) {
			serverTimestamps = append(serverTimestamps, name)
			delete(local, name)
		}
	}
	doc := domain.Document{ID: uuid.NewString(), Fields: local}

	s.addPending(path, doc)
	s.refresh(path)

	if _, err := s.backend.Append(ctx, token, path, doc, serverTimestamps); err != nil {
		s.removePending(path, doc.ID)
		s.refresh(path)
		return "", err
	}
	if !s.watched(path) {
		s.removePending(path, doc.ID)
	}
	return doc.ID, nil
}

// OnSnapshot watches a collection. onChange receives the full member set,
// pending local documents included. Unsubscribe must not be called from
// within onChange.
func (s *Store) OnSnapshot(path string, onChange func(docs []domain.Document), onError func(err error)) contract.Unsubscribe {
	w := &watcher{onChange: onChange}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	if s.watchers[path] == nil {
		s.watchers[path] = make(map[int]*watcher)
	}
	s.watchers[path][id] = w
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	token := s.tokens.Token()
	go func() {
		if token == "" {
			onError(errors.ErrNoSession)
			return
		}
		err := s.backend.Subscribe(ctx, token, path, func(docs []domain.Document) {
			s.deliver(path, w, docs)
		})
		if err != nil && ctx.Err() == nil {
			onError(err)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			w.deliverMu.Lock()
			w.closed = true
			w.deliverMu.Unlock()

			s.mu.Lock()
			delete(s.watchers[path], id)
			if len(s.watchers[path]) == 0 {
				delete(s.watchers, path)
			}
			s.mu.Unlock()
		})
	}
}

// deliver records a server snapshot and forwards it merged with the
// pending documents it does not confirm yet.
func (s *Store) deliver(path string, w *watcher, docs []domain.Document) {
	w.deliverMu.Lock()
	defer w.deliverMu.Unlock()
	if w.closed {
		return
	}

	s.mu.Lock()
	confirmed := lo.SliceToMap(docs, func(doc domain.Document) (string, struct{}) {
		return doc.ID, struct{}{}
	})
	s.pending[path] = lo.Reject(s.pending[path], func(doc domain.Document, _ int) bool {
		_, ok := confirmed[doc.ID]
		return ok
	})
	if len(s.pending[path]) == 0 {
		delete(s.pending, path)
	}
	w.received = true
	w.last = docs
	merged := s.merge(path, docs)
	s.mu.Unlock()

	w.onChange(merged)
}

// refresh re-delivers the last snapshot of every watcher of path with the
// current pending documents.
func (s *Store) refresh(path string) {
	s.mu.Lock()
	watchers := lo.Values(s.watchers[path])
	s.mu.Unlock()

	for _, w := range watchers {
		w.deliverMu.Lock()
		s.mu.Lock()
		ready := w.received && !w.closed
		merged := s.merge(path, w.last)
		s.mu.Unlock()
		if ready {
			w.onChange(merged)
		}
		w.deliverMu.Unlock()
	}
}

// merge must be called with s.mu held.
func (s *Store) merge(path string, docs []domain.Document) []domain.Document {
	merged := make([]domain.Document, 0, len(docs)+len(s.pending[path]))
	merged = append(merged, docs...)
	present := lo.SliceToMap(docs, func(doc domain.Document) (string, struct{}) {
		return doc.ID, struct{}{}
	})
	for _, doc := range s.pending[path] {
		if _, ok := present[doc.ID]; !ok {
			merged = append(merged, doc)
		}
	}
	return merged
}

func (s *Store) addPending(path string, doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[path] = append(s.pending[path], doc)
}

func (s *Store) removePending(path, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[path] = lo.Reject(s.pending[path], func(doc domain.Document, _ int) bool {
		return doc.ID == id
	})
	if len(s.pending[path]) == 0 {
		delete(s.pending, path)
	}
}

func (s *Store) watched(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watchers[path]) > 0
}
