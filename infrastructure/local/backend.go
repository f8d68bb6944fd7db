// Package local assembles the auth provider and the document store in
// process. The server exposes it over gRPC; the client can embed it.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"talk/auth"
	"talk/moderation"
	"talk/repositories"
	"talk/runtime"
	"talk/runtime/workers"
	"talk/services"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type Options struct {
	TokenSecret          string
	TokenDuration        time.Duration
	Policy               services.AuthPolicy
	Moderator            *moderation.Moderator
	BufferSize           int
	ConnectionBufferSize int
	SinkTimeout          time.Duration
	RestartInterval      time.Duration
}

type Backend struct {
	Tokens       *auth.TokenIssuer
	Auth         *services.AuthService
	Documents    *services.DocumentService
	orchestrator *runtime.Orchestrator
	options      Options
	log          *slog.Logger
}

func NewBackend(log *slog.Logger, db *badger.DB, options Options) (*Backend, error) {
	tokens, err := auth.NewTokenIssuer(options.TokenSecret, options.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	documentRepository := repositories.NewDocumentRepository(db, log)
	registry := runtime.NewRegistry()
	supervisor := workers.NewSupervisor(log, options.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, documentRepository,
		options.BufferSize, options.SinkTimeout)

	return &Backend{
		Tokens:       tokens,
		Auth:         services.NewAuthService(log, repositories.NewUserRepository(db), tokens, options.Policy),
		Documents:    services.NewDocumentService(log, documentRepository, registry, orchestrator, options.Moderator),
		orchestrator: orchestrator,
		options:      options,
		log:          log,
	}, nil
}

// Start runs the snapshot fan-out until ctx is done or Stop is called.
func (b *Backend) Start(ctx context.Context) {
	b.orchestrator.Start(ctx)
}

func (b *Backend) Stop() {
	b.orchestrator.Stop()
}

// AuthBackend returns the in-process auth API used by embedded clients.
func (b *Backend) AuthBackend() *AuthBackend {
	return NewAuthBackend(b.Auth)
}

// DocumentBackend returns the in-process document API used by embedded clients.
func (b *Backend) DocumentBackend() *DocumentBackend {
	return NewDocumentBackend(b.log, b.Auth, b.Documents, b.options.ConnectionBufferSize)
}
