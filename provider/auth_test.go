package provider

import (
	"context"
	"log/slog"
	"talk/domain"
	"talk/errors"
	"talk/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuth(t *testing.T) (*Auth, *mocks.MockIAuthBackend) {
	t.Helper()
	backend := mocks.NewMockIAuthBackend(gomock.NewController(t))
	return NewAuth(logs.GetLoggerFromLevel(slog.LevelDebug), backend), backend
}

func TestAuth_OnAuthStateChanged(t *testing.T) {
	ctx := context.Background()
	ada := domain.Identity{ID: "uid-1", Email: "ada@example.com"}

	t.Run("should deliver the signed out state right away", func(t *testing.T) {
		req := require.New(t)
		a, _ := newAuth(t)
		var got []*domain.Identity

		// When
		unsubscribe := a.OnAuthStateChanged(func(identity *domain.Identity) { got = append(got, identity) })
		defer unsubscribe()

		// Then
		req.Len(got, 1)
		req.Nil(got[0])
	})

	t.Run("should notify sign in then sign out", func(t *testing.T) {
		req := require.New(t)
		a, backend := newAuth(t)
		var got []*domain.Identity
		unsubscribe := a.OnAuthStateChanged(func(identity *domain.Identity) { got = append(got, identity) })
		defer unsubscribe()

		// Given
		backend.EXPECT().SignInWithPassword(ctx, "ada@example.com", "secret1").
			Return(domain.AuthSession{Token: "tok", Identity: ada}, nil)

		// When
		identity, err := a.SignInWithPassword(ctx, "ada@example.com", "secret1")
		req.NoError(err)
		req.NoError(a.SignOut(ctx))

		// Then
		req.Equal(ada, identity)
		req.Len(got, 3)
		req.Equal(ada, *got[1])
		req.Nil(got[2])
		req.Empty(a.Token())
	})

	t.Run("should keep the state on a failed sign in", func(t *testing.T) {
		req := require.New(t)
		a, backend := newAuth(t)
		var got []*domain.Identity
		unsubscribe := a.OnAuthStateChanged(func(identity *domain.Identity) { got = append(got, identity) })
		defer unsubscribe()

		// Given
		backend.EXPECT().SignInAnonymously(ctx).Return(domain.AuthSession{}, errors.ErrOperationNotAllowed)

		// When
		_, err := a.SignInAnonymously(ctx)

		// Then
		req.ErrorIs(err, errors.ErrOperationNotAllowed)
		req.Len(got, 1)
		req.Empty(a.Token())
	})

	t.Run("should stop notifying after unsubscribe", func(t *testing.T) {
		req := require.New(t)
		a, backend := newAuth(t)
		var got []*domain.Identity
		unsubscribe := a.OnAuthStateChanged(func(identity *domain.Identity) { got = append(got, identity) })

		// Given
		backend.EXPECT().SignInWithCustomToken(ctx, "custom").
			Return(domain.AuthSession{Token: "tok", Identity: ada}, nil)

		// When
		unsubscribe()
		unsubscribe()
		_, err := a.SignInWithCustomToken(ctx, "custom")

		// Then
		req.NoError(err)
		req.Len(got, 1)
		req.Equal("tok", a.Token())
	})
}

func TestAuth_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should fail without a session", func(t *testing.T) {
		req := require.New(t)
		a, _ := newAuth(t)

		// When
		_, err := a.UpdateProfile(ctx, "Ada")

		// Then
		req.ErrorIs(err, errors.ErrNoSession)
	})

	t.Run("should notify the renamed identity", func(t *testing.T) {
		req := require.New(t)
		a, backend := newAuth(t)
		created := domain.Identity{ID: "uid-1", Email: "ada@example.com"}
		renamed := domain.Identity{ID: "uid-1", Email: "ada@example.com", DisplayName: "Ada"}

		// Given
		backend.EXPECT().CreateAccount(ctx, "ada@example.com", "secret1").
			Return(domain.AuthSession{Token: "tok", Identity: created}, nil)
		backend.EXPECT().UpdateProfile(ctx, "tok", "Ada").Return(renamed, nil)
		_, err := a.CreateAccount(ctx, "ada@example.com", "secret1")
		req.NoError(err)
		var got []*domain.Identity
		unsubscribe := a.OnAuthStateChanged(func(identity *domain.Identity) { got = append(got, identity) })
		defer unsubscribe()

		// When
		identity, err := a.UpdateProfile(ctx, "Ada")

		// Then
		req.NoError(err)
		req.Equal(renamed, identity)
		req.Len(got, 2)
		req.Equal(created, *got[0])
		req.Equal(renamed, *got[1])
		req.Equal("tok", a.Token())
	})
}
