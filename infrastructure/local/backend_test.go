package local

import (
	"context"
	"log/slog"
	"talk/domain"
	"talk/errors"
	"talk/services"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	backend, err := NewBackend(log, db, Options{
		TokenSecret:          "secret",
		TokenDuration:        time.Hour,
		Policy:               services.AuthPolicy{EmailPassword: true, Anonymous: true},
		BufferSize:           16,
		ConnectionBufferSize: 4,
		SinkTimeout:          time.Second,
		RestartInterval:      10 * time.Millisecond,
	})
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	backend.Start(ctx)
	t.Cleanup(func() {
		cancel()
		backend.Stop()
	})
	return backend
}

func TestBackend_SubscribeReceivesAppends(t *testing.T) {
	req := require.New(t)
	backend := newBackend(t)
	ctx := context.Background()
	path := domain.MessagesPath("")

	// Given a signed-in user
	session, err := backend.AuthBackend().CreateAccount(ctx, "ada@example.com", "secret1")
	req.NoError(err)
	store := backend.DocumentBackend()

	// And a subscription to the feed
	snapshots := make(chan []domain.Document, 8)
	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- store.Subscribe(subCtx, session.Token, path, func(docs []domain.Document) { snapshots <- docs })
	}()

	// Then the empty collection is delivered first
	req.Empty(receive(t, snapshots))

	// When a message is appended
	_, err = store.Append(ctx, session.Token, path, domain.Document{ID: "m1", Fields: map[string]any{
		domain.FieldText:     "hello",
		domain.FieldSenderID: session.Identity.ID,
	}}, []string{domain.FieldCreatedAt})
	req.NoError(err)

	// Then the full collection is delivered with the server timestamp
	docs := receive(t, snapshots)
	req.Len(docs, 1)
	req.Equal("m1", docs[0].ID)
	req.NotNil(docs[0].TimeField(domain.FieldCreatedAt))

	// And the subscription ends cleanly
	cancel()
	req.NoError(<-done)
}

func TestBackend_SessionIsRequired(t *testing.T) {
	req := require.New(t)
	backend := newBackend(t)
	store := backend.DocumentBackend()

	_, err := store.Append(context.Background(), "bogus", domain.MessagesPath(""), domain.Document{ID: "x"}, nil)
	req.ErrorIs(err, errors.ErrUnauthenticated)

	err = store.Subscribe(context.Background(), "", domain.MessagesPath(""), func([]domain.Document) {})
	req.ErrorIs(err, errors.ErrUnauthenticated)
}

func TestBackend_UpdateProfile(t *testing.T) {
	req := require.New(t)
	backend := newBackend(t)
	ctx := context.Background()
	authBackend := backend.AuthBackend()

	session, err := authBackend.CreateAccount(ctx, "bob@example.com", "secret1")
	req.NoError(err)

	identity, err := authBackend.UpdateProfile(ctx, session.Token, "Bob")
	req.NoError(err)
	req.Equal("Bob", identity.DisplayName)

	// And the name is kept for the next sign-in
	again, err := authBackend.SignInWithPassword(ctx, "bob@example.com", "secret1")
	req.NoError(err)
	req.Equal("Bob", again.Identity.DisplayName)
}

func receive(t *testing.T, snapshots chan []domain.Document) []domain.Document {
	t.Helper()
	select {
	case docs := <-snapshots:
		return docs
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no snapshot delivered")
		return nil
	}
}
