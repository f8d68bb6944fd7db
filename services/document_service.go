//go:generate go run go.uber.org/mock/mockgen -source=document_service.go -destination=../mocks/mock_document_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"talk/contract"
	"talk/domain"
	"talk/domain/event"
	"talk/errors"
	"talk/moderation"
	"talk/repositories"
	"time"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Append(ctx context.Context, caller domain.Identity, path string, doc domain.Document, serverTimestamps []string) (domain.Document, error)
	Snapshot(path string) ([]domain.Document, error)
	Watch(path string, sink contract.EventSink) (string, error)
	Unwatch(subscriberID, path string)
}

type DocumentService struct {
	log        *slog.Logger
	repository repositories.IDocumentRepository
	registry   contract.IRegistry
	dispatcher contract.IDispatcher
	moderator  *moderation.Moderator
	now        func() time.Time
}

// NewDocumentService wires the store. moderator may be nil.
func NewDocumentService(log *slog.Logger, repository repositories.IDocumentRepository,
	registry contract.IRegistry, dispatcher contract.IDispatcher, moderator *moderation.Moderator) *DocumentService {
	return &DocumentService{
		log:        log,
		repository: repository,
		registry:   registry,
		dispatcher: dispatcher,
		moderator:  moderator,
		now:        time.Now,
	}
}

// Append stores a new document in the collection and notifies its
// subscribers. Fields named in serverTimestamps are set to the server clock.
// A senderId field, when present, must be the caller.
func (s *DocumentService) Append(_ context.Context, caller domain.Identity, path string,
	doc domain.Document, serverTimestamps []string) (domain.Document, error) {
	if !domain.ValidCollectionPath(path) {
		return domain.Document{}, errors.ErrInvalidArgument
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if strings.ContainsAny(doc.ID, "/:") {
		return domain.Document{}, errors.ErrInvalidArgument
	}
	if sender, ok := doc.Fields[domain.FieldSenderID]; ok && sender != caller.ID {
		return domain.Document{}, errors.ErrPermissionDenied
	}

	fields := make(map[string]any, len(doc.Fields)+len(serverTimestamps))
	maps.Copy(fields, doc.Fields)
	now := s.now()
	for _, name := range serverTimestamps {
		fields[name] = domain.TimestampValue(now)
	}
	for name, value := range fields {
		if domain.IsServerTimestamp(value) {
			fields[name] = domain.TimestampValue(now)
		}
	}
	if text, ok := fields[domain.FieldText].(string); ok && s.moderator != nil {
		censored, words := s.moderator.Censor(text)
		if len(words) > 0 {
			s.log.Info("Message censored", "document_id", doc.ID, "words", len(words))
			fields[domain.FieldText] = censored
		}
	}

	stored := domain.Document{ID: doc.ID, Fields: fields}
	if err := s.repository.Insert(path, stored); err != nil {
		return domain.Document{}, err
	}

	s.dispatcher.Dispatch(event.DocumentAppended{Path: path, DocumentID: stored.ID, At: now})
	return stored, nil
}

func (s *DocumentService) Snapshot(path string) ([]domain.Document, error) {
	if !domain.ValidCollectionPath(path) {
		return nil, errors.ErrInvalidArgument
	}
	return s.repository.List(path)
}

// Watch registers a sink for the collection and returns its subscriber id.
func (s *DocumentService) Watch(path string, sink contract.EventSink) (string, error) {
	if !domain.ValidCollectionPath(path) {
		return "", errors.ErrInvalidArgument
	}
	subscriberID := uuid.NewString()
	s.registry.Subscribe(subscriberID, path, sink)
	return subscriberID, nil
}

func (s *DocumentService) Unwatch(subscriberID, path string) {
	s.registry.Unsubscribe(subscriberID, path)
}
